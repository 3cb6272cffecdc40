package catalogfile

import "errors"

var (
	// ErrReadFile возвращается, когда файл каталога не читается или не разбирается
	ErrReadFile = errors.New("catalogfile: failed to read catalog file")

	// ErrInvalidCatalog возвращается, когда датасет не проходит проверку целостности
	ErrInvalidCatalog = errors.New("catalogfile: invalid catalog dataset")
)
