package postgres

import (
	"context"
	"strings"

	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactColumns maps patchable fields to their column names.
var contactColumns = map[entity.ContactField]string{
	entity.ContactFieldFirstName:   "first_name",
	entity.ContactFieldLastName:    "last_name",
	entity.ContactFieldEmail:       "email",
	entity.ContactFieldPhone:       "phone_number",
	entity.ContactFieldBirthDate:   "birth_date",
	entity.ContactFieldDescription: "description",
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Where("user_id = ?", userID)
}

// List returns a page of the user's contacts ordered by first name.
func (repo *contactRepository) List(ctx context.Context, userID uuid.UUID, page entity.ContactPage) ([]*entity.Contact, error) {
	var rows []model.ContactModel
	err := repo.owned(ctx, userID).
		Order("first_name ASC").Order("id ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list contacts")
	}

	return toContactDomains(rows), nil
}

// ListAll returns every contact of the user.
func (repo *contactRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	var rows []model.ContactModel
	if err := repo.owned(ctx, userID).Order("first_name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list all contacts")
	}

	return toContactDomains(rows), nil
}

func (repo *contactRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error) {
	return repo.first(repo.owned(ctx, userID).Where("id = ?", id), "find contact by id")
}

func (repo *contactRepository) FindByFirstName(ctx context.Context, userID uuid.UUID, firstName string) (*entity.Contact, error) {
	return repo.first(repo.owned(ctx, userID).Where("first_name = ?", firstName), "find contact by first name")
}

func (repo *contactRepository) FindByLastName(ctx context.Context, userID uuid.UUID, lastName string) (*entity.Contact, error) {
	return repo.first(repo.owned(ctx, userID).Where("last_name = ?", lastName), "find contact by last name")
}

func (repo *contactRepository) FindByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Contact, error) {
	return repo.first(repo.owned(ctx, userID).Where("email = ?", email), "find contact by email")
}

func (repo *contactRepository) first(query *gorm.DB, op string) (*entity.Contact, error) {
	var row model.ContactModel
	if err := query.Order("first_name ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toContactDomain(&row), nil
}

// Search matches query as a case-insensitive substring of first name, last name or email.
func (repo *contactRepository) Search(ctx context.Context, userID uuid.UUID, query string, page entity.ContactPage) ([]*entity.Contact, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var rows []model.ContactModel
	err := repo.owned(ctx, userID).
		Where(repo.db.
			Where("LOWER(first_name) LIKE ? ESCAPE '\\'", pattern).
			Or("LOWER(last_name) LIKE ? ESCAPE '\\'", pattern).
			Or("LOWER(email) LIKE ? ESCAPE '\\'", pattern)).
		Order("first_name ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "search contacts")
	}

	return toContactDomains(rows), nil
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	row := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrContactAlreadyExists, contact.FirstName)
		}

		return translateWriteError(err, "create contact")
	}

	contact.ID = row.ID
	contact.CreatedAt = row.CreatedAt
	contact.UpdatedAt = row.UpdatedAt

	return nil
}

// UpdateField sets one column and reads the row back.
func (repo *contactRepository) UpdateField(ctx context.Context, userID, id uuid.UUID, field entity.ContactField, value any) (*entity.Contact, error) {
	column, ok := contactColumns[field]
	if !ok {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown contact field " + string(field))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update(column, value)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, errors.Wrapf(repository.ErrContactAlreadyExists, "%v", value)
		}

		return nil, translateWriteError(result.Error, "update contact "+column)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	return repo.FindByID(ctx, userID, id)
}

// Delete removes the contact and returns it as it was before deletion.
func (repo *contactRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error) {
	contact, err := repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "delete contact")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	return contact, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		BirthDate:   data.BirthDate,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toContactDomains(rows []model.ContactModel) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, len(rows))
	for i := range rows {
		contacts = append(contacts, toContactDomain(&rows[i]))
	}

	return contacts
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		BirthDate:   data.BirthDate,
		Description: data.Description,
	}
}
