package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

// UserService coordinates the user aggregate: it fans one logical operation
// out into writes across the root and its four dependent record types, and
// assembles the flat view on reads. Dependent rows are always minted fresh,
// never looked up and shared.
type UserService struct {
	users     repository.Repository[entity.User]
	profiles  repository.Repository[entity.Profile]
	addresses repository.Repository[entity.Address]
	roles     repository.Repository[entity.Role]
	phones    repository.Repository[entity.Phone]
	tx        repository.TxRunner
	hasher    *helpers.PasswordHasher
	log       *logrus.Entry
}

func NewUserService(
	users repository.Repository[entity.User],
	profiles repository.Repository[entity.Profile],
	addresses repository.Repository[entity.Address],
	roles repository.Repository[entity.Role],
	phones repository.Repository[entity.Phone],
	tx repository.TxRunner,
	hasher *helpers.PasswordHasher,
	logger *logrus.Logger,
) *UserService {
	return &UserService{
		users:     users,
		profiles:  profiles,
		addresses: addresses,
		roles:     roles,
		phones:    phones,
		tx:        tx,
		hasher:    hasher,
		log:       helpers.ComponentLogger(logger, "UserService"),
	}
}

// CreateUser creates the four dependent rows and then the root referencing
// their generated keys, all inside one transaction. It fails closed when a
// user with the same email already exists; the existence check itself is not
// atomic with the writes, and the store's unique email index is the backstop
// for concurrent creates.
func (s *UserService) CreateUser(ctx context.Context, view UserView) bool {
	if s.UserExists(ctx, view.Email) {
		return false
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		address, err := s.addresses.Create(ctx, &entity.Address{
			StreetName: view.StreetName,
			PostalCode: view.PostalCode,
			City:       view.City,
		})
		if err != nil {
			return err
		}
		phone, err := s.phones.Create(ctx, &entity.Phone{Number: view.PhoneNumber})
		if err != nil {
			return err
		}
		profile, err := s.profiles.Create(ctx, &entity.Profile{
			FirstName: view.FirstName,
			LastName:  view.LastName,
		})
		if err != nil {
			return err
		}
		role, err := s.roles.Create(ctx, &entity.Role{Name: strings.ToUpper(view.RoleName)})
		if err != nil {
			return err
		}
		_, err = s.users.Create(ctx, &entity.User{
			Email:     view.Email,
			Password:  s.hasher.Hash(view.Password),
			AddressID: address.ID,
			PhoneID:   phone.ID,
			ProfileID: profile.ID,
			RoleID:    role.ID,
		})
		return err
	})
	if err != nil {
		s.log.WithError(err).WithField("email", view.Email).Error("create user failed")
		return false
	}
	return true
}

// GetAllUsers flattens every hydrated user into a view. Pure projection, no
// writes.
func (s *UserService) GetAllUsers(ctx context.Context) ([]UserView, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, flattenUser(u))
	}
	return views, nil
}

// GetOneUser fetches the hydrated user by email. Callers are expected to have
// checked UserExists first.
func (s *UserService) GetOneUser(ctx context.Context, email string) (*UserView, error) {
	u, err := s.users.GetOne(ctx, repository.Eq("email", email))
	if err != nil {
		return nil, err
	}
	view := flattenUser(u)
	return &view, nil
}

// UpdateUser looks the root up by email and then rewrites the aggregate from
// brand-new records. Each replacement's update filter uses the replacement's
// own identifier, which is still the zero value at that point, so the
// dependent and root updates generally match nothing; ProductService derives
// its filters from the fetched root instead. The result only reflects whether
// the root email was found.
func (s *UserService) UpdateUser(ctx context.Context, view UserView) bool {
	_, err := s.users.GetOne(ctx, repository.Eq("email", view.Email))
	if err != nil {
		return false
	}

	txErr := s.tx.InTx(ctx, func(ctx context.Context) error {
		address := &entity.Address{
			StreetName: view.StreetName,
			PostalCode: view.PostalCode,
			City:       view.City,
		}
		_, _ = s.addresses.Update(ctx, repository.Eq("id", address.ID), address)

		phone := &entity.Phone{Number: view.PhoneNumber}
		_, _ = s.phones.Update(ctx, repository.Eq("id", phone.ID), phone)

		role := &entity.Role{Name: view.RoleName}
		_, _ = s.roles.Update(ctx, repository.Eq("id", role.ID), role)

		profile := &entity.Profile{
			FirstName: view.FirstName,
			LastName:  view.LastName,
		}
		_, _ = s.profiles.Update(ctx, repository.Eq("id", profile.ID), profile)

		user := &entity.User{
			Email:    view.Email,
			Password: s.hasher.Hash(view.Password),
		}
		_, _ = s.users.Update(ctx, repository.Eq("id", user.ID), user)
		return nil
	})
	if txErr != nil {
		s.log.WithError(txErr).WithField("email", view.Email).Error("update user failed")
		return false
	}
	return true
}

// DeleteUser fetches the root by email and deletes its dependents by the keys
// read off the fetched row, then the root itself. The result only reflects
// whether the root was found; individual dependent deletes are not checked.
func (s *UserService) DeleteUser(ctx context.Context, view UserView) bool {
	u, err := s.users.GetOne(ctx, repository.Eq("email", view.Email))
	if err != nil {
		return false
	}

	txErr := s.tx.InTx(ctx, func(ctx context.Context) error {
		s.addresses.Delete(ctx, repository.Eq("id", u.AddressID))
		s.phones.Delete(ctx, repository.Eq("id", u.PhoneID))
		s.profiles.Delete(ctx, repository.Eq("id", u.ProfileID))
		s.roles.Delete(ctx, repository.Eq("id", u.RoleID))
		s.users.Delete(ctx, repository.Eq("id", u.ID))
		return nil
	})
	if txErr != nil {
		s.log.WithError(txErr).WithField("email", view.Email).Error("delete user failed")
		return false
	}
	return true
}

// UserExists is the create-time guard and the presentation layer's
// pre-update/show check.
func (s *UserService) UserExists(ctx context.Context, email string) bool {
	if s.users.Exists(ctx, repository.Eq("email", email)) {
		s.log.WithField("email", email).Debug("user already exists")
		return true
	}
	return false
}

func flattenUser(u *entity.User) UserView {
	view := UserView{Email: u.Email}
	if u.Profile != nil {
		view.FirstName = u.Profile.FirstName
		view.LastName = u.Profile.LastName
	}
	if u.Phone != nil {
		view.PhoneNumber = u.Phone.Number
	}
	if u.Role != nil {
		view.RoleName = u.Role.Name
	}
	if u.Address != nil {
		view.StreetName = u.Address.StreetName
		view.PostalCode = u.Address.PostalCode
		view.City = u.Address.City
	}
	return view
}
