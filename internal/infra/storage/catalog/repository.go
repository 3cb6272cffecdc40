package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/pkg/psqlbuilder"
)

// Repository читает справочный каталог из PostgreSQL.
// Каталог read-only: репозиторий выполняет только выборки,
// бронирования в БД не сохраняются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadCatalog выбирает религии, предметы наборов и услуги,
// собирает их в доменный каталог и валидирует целостность
func (r *Repository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	catalog := &domain.Catalog{}

	religions, err := r.loadReligions(ctx)
	if err != nil {
		return nil, err
	}
	catalog.Religions = religions

	kits, err := r.loadKits(ctx)
	if err != nil {
		return nil, err
	}
	catalog.Kits = kits

	services, err := r.loadServices(ctx)
	if err != nil {
		return nil, err
	}
	catalog.Services = services

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return catalog, nil
}

func (r *Repository) loadReligions(ctx context.Context) ([]domain.Religion, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"icon",
	).
		From("religions").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadReligions - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadReligions - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var religions []domain.Religion
	for rows.Next() {
		var religion domain.Religion
		var icon sql.NullString
		if err := rows.Scan(&religion.ID, &religion.Name, &religion.Description, &icon); err != nil {
			return nil, fmt.Errorf("%w: loadReligions: %v", ErrScanRow, err)
		}
		religion.Icon = icon.String
		religions = append(religions, religion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadReligions - rows: %v", ErrExecQuery, err)
	}

	return religions, nil
}

func (r *Repository) loadKits(ctx context.Context) ([]domain.Kit, error) {
	query, args, err := psqlbuilder.Select(
		"religion_id",
		"id",
		"name",
		"description",
		"price",
		"required",
	).
		From("kit_items").
		OrderBy("religion_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadKits - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadKits - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Предметы приходят отсортированными по religion_id,
	// группируем в наборы за один проход
	var kits []domain.Kit
	byReligion := make(map[string]int)

	for rows.Next() {
		var religionID string
		var item domain.KitItem
		if err := rows.Scan(&religionID, &item.ID, &item.Name, &item.Description, &item.Price, &item.Required); err != nil {
			return nil, fmt.Errorf("%w: loadKits: %v", ErrScanRow, err)
		}

		idx, ok := byReligion[religionID]
		if !ok {
			kits = append(kits, domain.Kit{ReligionID: religionID})
			idx = len(kits) - 1
			byReligion[religionID] = idx
		}
		kits[idx].Items = append(kits[idx].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadKits - rows: %v", ErrExecQuery, err)
	}

	return kits, nil
}

func (r *Repository) loadServices(ctx context.Context) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration",
	).
		From("services").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []domain.Service
	index := make(map[string]int)

	for rows.Next() {
		var svc domain.Service
		var duration sql.NullString
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &duration); err != nil {
			return nil, fmt.Errorf("%w: loadServices: %v", ErrScanRow, err)
		}
		svc.Duration = duration.String
		index[svc.ID] = len(services)
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - rows: %v", ErrExecQuery, err)
	}

	// Привязки услуга-религия лежат в отдельной таблице (many-to-many)
	linkQuery, linkArgs, err := psqlbuilder.Select(
		"service_id",
		"religion_id",
	).
		From("service_religions").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - build link select: %v", ErrBuildQuery, err)
	}

	linkRows, err := r.db.QueryContext(ctx, linkQuery, linkArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - execute link select: %v", ErrExecQuery, err)
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var serviceID, religionID string
		if err := linkRows.Scan(&serviceID, &religionID); err != nil {
			return nil, fmt.Errorf("%w: loadServices - link: %v", ErrScanRow, err)
		}
		if idx, ok := index[serviceID]; ok {
			services[idx].Religions = append(services[idx].Religions, religionID)
		}
	}
	if err := linkRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - link rows: %v", ErrExecQuery, err)
	}

	return services, nil
}
