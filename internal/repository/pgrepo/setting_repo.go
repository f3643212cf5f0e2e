package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
)

type SettingRepository struct {
	db uow.DBTX
}

func NewSettingRepository(db uow.DBTX) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get возвращает domain.ErrRecordNotFound, если ключ не задан. Дефолты
// для незаданных ключей - забота сервисного слоя.
func (s *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	const query = `SELECT key, value, updated_at FROM settings WHERE key = $1`

	var setting domain.Setting
	err := s.db.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting setting %s", key)
	}
	return &setting, nil
}

// Set перезаписывает значение ключа вместе с отметкой времени.
func (s *SettingRepository) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return convertErr(err, "setting %s", key)
	}
	return nil
}
