package catalogfile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// Файловая схема каталога. Держится отдельно от доменных типов,
// чтобы формат файла не диктовал форму домена.

type fileReligion struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
}

type fileKitItem struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Price       int    `toml:"price"`
	Required    bool   `toml:"required"`
}

type fileKit struct {
	ReligionID string        `toml:"religion_id"`
	Items      []fileKitItem `toml:"items"`
}

type fileService struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Price       int      `toml:"price"`
	Duration    string   `toml:"duration"`
	Religions   []string `toml:"religions"`
}

type fileCatalog struct {
	Religions []fileReligion `toml:"religions"`
	Kits      []fileKit      `toml:"kits"`
	Services  []fileService  `toml:"services"`
}

// Load читает справочный каталог из TOML файла и валидирует его
func Load(path string) (*domain.Catalog, error) {
	var fc fileCatalog
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	catalog := fc.toDomain()

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return catalog, nil
}

func (fc *fileCatalog) toDomain() *domain.Catalog {
	catalog := &domain.Catalog{
		Religions: make([]domain.Religion, 0, len(fc.Religions)),
		Kits:      make([]domain.Kit, 0, len(fc.Kits)),
		Services:  make([]domain.Service, 0, len(fc.Services)),
	}

	for _, r := range fc.Religions {
		catalog.Religions = append(catalog.Religions, domain.Religion{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
		})
	}

	for _, k := range fc.Kits {
		kit := domain.Kit{ReligionID: k.ReligionID, Items: make([]domain.KitItem, 0, len(k.Items))}
		for _, item := range k.Items {
			kit.Items = append(kit.Items, domain.KitItem{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Required:    item.Required,
			})
		}
		catalog.Kits = append(catalog.Kits, kit)
	}

	for _, s := range fc.Services {
		catalog.Services = append(catalog.Services, domain.Service{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
			Religions:   s.Religions,
		})
	}

	return catalog
}
