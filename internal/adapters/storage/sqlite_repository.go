package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
)

// SQLiteRepository implements ports.RootRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RootRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the sftpbot logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SFTPBOT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets a running session read while the CLI writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&RootModel{}, &TestCaseModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetRoot implements RootReader.GetRoot
func (r *SQLiteRepository) GetRoot(ctx context.Context, id uint) (*domain.Root, error) {
	var model RootModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("root %d: %w", id, domain.ErrRootNotFound)
		}
		return nil, err
	}

	root := rootModelToDomain(model)
	return &root, nil
}

// ListRoots implements RootReader.ListRoots
func (r *SQLiteRepository) ListRoots(ctx context.Context) ([]domain.Root, error) {
	var models []RootModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Root, len(models))
	for i, m := range models {
		result[i] = rootModelToDomain(m)
	}
	return result, nil
}

// AddRoot implements RootWriter.AddRoot
func (r *SQLiteRepository) AddRoot(ctx context.Context, root domain.Root) (*domain.Root, error) {
	model := domainToRootModel(root)
	model.ID = 0

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("root %q: %w", root.Name, domain.ErrRootExists)
		}
		return nil, fmt.Errorf("failed to create root: %w", err)
	}

	created := rootModelToDomain(model)
	return &created, nil
}

// DeleteRoot implements RootWriter.DeleteRoot. Test cases of the root are
// deleted in the same transaction.
func (r *SQLiteRepository) DeleteRoot(ctx context.Context, id uint) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("root_id = ?", id).Delete(&TestCaseModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete test cases: %w", err)
			}

			result := tx.Where("id = ?", id).Delete(&RootModel{})
			if result.Error != nil {
				return fmt.Errorf("failed to delete root: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("root %d: %w", id, domain.ErrRootNotFound)
			}
			return nil
		})
	}, 3)
}

// ListTestCases implements TestCaseReader.ListTestCases
func (r *SQLiteRepository) ListTestCases(ctx context.Context, rootID uint) ([]domain.TestCase, error) {
	var models []TestCaseModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("root_id = ?", rootID).
			Order("position").
			Order("id").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TestCase, len(models))
	for i, m := range models {
		result[i] = testCaseModelToDomain(m)
	}
	return result, nil
}

// AddTestCase implements TestCaseWriter.AddTestCase. The new case is appended
// after the root's existing cases.
func (r *SQLiteRepository) AddTestCase(ctx context.Context, tc domain.TestCase) (*domain.TestCase, error) {
	model := domainToTestCaseModel(tc)
	model.ID = 0

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&RootModel{}).Where("id = ?", tc.RootID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("root %d: %w", tc.RootID, domain.ErrRootNotFound)
			}

			var maxPosition int
			if err := tx.Model(&TestCaseModel{}).
				Where("root_id = ?", tc.RootID).
				Select("COALESCE(MAX(position), -1)").
				Scan(&maxPosition).Error; err != nil {
				return fmt.Errorf("failed to compute test case position: %w", err)
			}
			model.Position = maxPosition + 1

			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create test case: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	created := testCaseModelToDomain(model)
	return &created, nil
}

// DeleteTestCase implements TestCaseWriter.DeleteTestCase
func (r *SQLiteRepository) DeleteTestCase(ctx context.Context, id uint) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TestCaseModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete test case: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("test case %d: %w", id, domain.ErrTestCaseNotFound)
		}
		return nil
	}, 3)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
