package products

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

type stubProductRepo struct {
	byID    map[uuid.UUID]*models.Product
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[uuid.UUID]*models.Product)}
}

func (s *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *stubProductRepo) FindBySlug(_ context.Context, slug string) (*models.Product, error) {
	for _, p := range s.byID {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepo) Create(_ context.Context, product *models.Product) error {
	if s.createErr != nil {
		return s.createErr
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	s.byID[product.ID] = &copied
	return nil
}

func (s *stubProductRepo) Update(_ context.Context, product *models.Product) error {
	copied := *product
	s.byID[product.ID] = &copied
	return nil
}

func (s *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *stubProductRepo) List(_ context.Context, _ ListQuery) ([]models.Product, string, error) {
	out := make([]models.Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, "", nil
}

func TestServiceCreateStartsActive(t *testing.T) {
	repo := newStubProductRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateProductInput{
		Title:      "Linen Apron",
		Slug:       "linen-apron",
		PriceCents: 5400,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !dto.IsActive {
		t.Fatalf("new products should start active")
	}
	if dto.PriceCents != 5400 {
		t.Fatalf("unexpected price %d", dto.PriceCents)
	}
}

func TestServiceCreateRejectsNegativePrice(t *testing.T) {
	repo := newStubProductRepo()
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), CreateProductInput{Title: "x", Slug: "x", PriceCents: -1})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("nothing should be written on validation failure")
	}
}

func TestServiceCreateMapsSlugConflict(t *testing.T) {
	repo := newStubProductRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "products_slug_key"`)
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), CreateProductInput{Title: "x", Slug: "linen-apron", PriceCents: 100})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestServiceGetMapsNotFound(t *testing.T) {
	svc, _ := NewService(newStubProductRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceUpdateDeactivates(t *testing.T) {
	repo := newStubProductRepo()
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateProductInput{Title: "Linen Apron", Slug: "linen-apron", PriceCents: 5400})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	off := false
	updated, err := svc.Update(context.Background(), dto.ID, UpdateProductInput{IsActive: &off})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected product deactivated")
	}
	if updated.Title != "Linen Apron" {
		t.Fatalf("partial update must not clobber title, got %q", updated.Title)
	}
}
