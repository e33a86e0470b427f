package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/northwind-api/pkg/config"
)

// Querier abstrae *sql.DB y *sql.Tx para los repositorios (usable con conexión o tx).
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Open abre el archivo SQLite de Northwind y verifica la conexión.
// El handle es un recurso compartido de proceso: se abre una vez al arrancar y
// lo cierra el ciclo de vida externo (main) al apagar.
func Open(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	// Una sola conexión: SQLite serializa escritores de todos modos, y así el
	// patrón escribir-confirmar-releer de las mutaciones no se intercala con
	// otras peticiones sobre la misma fila.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
