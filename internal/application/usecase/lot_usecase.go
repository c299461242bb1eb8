package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/domain"
	"github.com/jhoicas/almoxarifado-api/internal/domain/entity"
	"github.com/jhoicas/almoxarifado-api/internal/domain/repository"
)

// LotUseCase casos de uso CRUD para lotes. Los lotes derivados de un split
// no se crean por aquí: los crea el motor de transferencias dentro de su
// transacción.
type LotUseCase struct {
	repo           repository.LotRepository
	items          repository.ItemRepository
	nearExpiryDays int
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, items repository.ItemRepository, nearExpiryDays int) *LotUseCase {
	return &LotUseCase{repo: repo, items: items, nearExpiryDays: nearExpiryDays}
}

// Create crea un nuevo lote. El producto dueño debe existir.
func (uc *LotUseCase) Create(in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del lote es obligatorio", domain.ErrInvalidOperation)
	}
	item, err := uc.items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ItemID)
	}
	lot := &entity.Lot{
		ItemID:          item.ID,
		PurchaseOrderID: in.PurchaseOrderID,
		Name:            in.Name,
		Quantity:        in.Quantity,
		ManufactureDate: in.ManufactureDate,
		ExpiryDate:      in.ExpiryDate,
		Note:            in.Note,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	return uc.toLotResponse(lot), nil
}

// GetByID obtiene un lote por ID.
func (uc *LotUseCase) GetByID(id string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("%w: lote %s", domain.ErrNotFound, id)
	}
	return uc.toLotResponse(lot), nil
}

// Update actualiza campos descriptivos del lote.
func (uc *LotUseCase) Update(id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("%w: lote %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		lot.Name = *in.Name
	}
	if in.ExpiryDate != nil {
		lot.ExpiryDate = in.ExpiryDate
	}
	if in.Note != nil {
		lot.Note = *in.Note
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return uc.toLotResponse(lot), nil
}

// List lista lotes, opcionalmente filtrados por producto.
func (uc *LotUseCase) List(itemID string, limit, offset int) (*dto.LotListResponse, error) {
	var list []*entity.Lot
	var err error
	if itemID != "" {
		list, err = uc.repo.ListByItem(itemID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *uc.toLotResponse(l))
	}
	return &dto.LotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *LotUseCase) toLotResponse(l *entity.Lot) *dto.LotResponse {
	now := time.Now()
	return &dto.LotResponse{
		ID:              l.ID,
		ItemID:          l.ItemID,
		PurchaseOrderID: l.PurchaseOrderID,
		Name:            l.Name,
		Quantity:        l.Quantity,
		ManufactureDate: l.ManufactureDate,
		ExpiryDate:      l.ExpiryDate,
		Note:            l.Note,
		Expired:         l.IsExpired(now),
		NearExpiry:      l.IsNearExpiry(now, uc.nearExpiryDays),
		CreatedAt:       l.CreatedAt,
	}
}
