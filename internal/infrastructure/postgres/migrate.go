package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/seu-usuario/estoque-pro/internal/infrastructure/postgres/migrations"
	"github.com/seu-usuario/estoque-pro/pkg/config"
)

// RunMigrations aplica as migrações embutidas com goose. Usa database/sql com o
// driver stdlib do pgx, em conexão própria fechada ao final (o pool da aplicação
// não participa).
func RunMigrations(ctx context.Context, cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexão para migração: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("aplicar migrações: %w", err)
	}
	return nil
}
