package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvalencia/crm-ventas/internal/application/dto"
	"github.com/jvalencia/crm-ventas/internal/domain"
	"github.com/jvalencia/crm-ventas/internal/domain/entity"
	"github.com/jvalencia/crm-ventas/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. Toda lectura o mutación
// pasa por domain.AssertOwnedBy contra el vendedor autenticado.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente asignado al vendedor autenticado.
// Devuelve ErrDuplicate si el email ya está registrado.
func (uc *CustomerUseCase) Create(sellerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; solo su vendedor puede leerlo.
func (uc *CustomerUseCase) GetByID(id, sellerID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(customer, sellerID); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes (sin filtro de vendedor).
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerList(list, limit, offset), nil
}

// ListBySeller lista los clientes del vendedor autenticado.
func (uc *CustomerUseCase) ListBySeller(sellerID string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListBySeller(sellerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCustomerList(list, limit, offset), nil
}

// Update aplica una actualización parcial; solo el vendedor dueño puede hacerlo.
func (uc *CustomerUseCase) Update(id, sellerID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(customer, sellerID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Surname != nil {
		customer.Surname = *in.Surname
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente; solo el vendedor dueño puede hacerlo.
func (uc *CustomerUseCase) Delete(id, sellerID string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if err := domain.AssertOwnedBy(customer, sellerID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
	}
}

func toCustomerList(list []*entity.Customer, limit, offset int) *dto.CustomerListResponse {
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
