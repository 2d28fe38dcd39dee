//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chatview/domain"
	"chatview/errors"
	goerrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const userPrefix = "user:"

// IUserRepository is the user directory the views resolve display names from.
type IUserRepository interface {
	FindUser(id string) (domain.User, error)
	SaveUser(user domain.User) error
	ListUsers() ([]domain.User, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// SaveUser creates or replaces the user stored under "user:{id}".
func (u *UserRepository) SaveUser(user domain.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	record, err := structpb.NewStruct(map[string]any{
		"id":           user.ID,
		"display_name": user.DisplayName,
		"avatar_url":   user.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("build user record: %w", err)
	}
	data, err := proto.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userPrefix+user.ID), data)
	})
}

// FindUser returns errors.ErrUserNotFound for unknown IDs.
func (u *UserRepository) FindUser(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			user, err = toUser(val)
			return err
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers returns every stored user ordered by ID.
func (u *UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(userPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				user, err := toUser(val)
				if err != nil {
					return err
				}
				users = append(users, user)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Debug("Users listed", "count", len(users))
	return users, nil
}

func toUser(data []byte) (domain.User, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(data, &record); err != nil {
		return domain.User{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	fields := record.GetFields()
	return domain.User{
		ID:          fields["id"].GetStringValue(),
		DisplayName: fields["display_name"].GetStringValue(),
		AvatarURL:   fields["avatar_url"].GetStringValue(),
	}, nil
}
