package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

var (
	alice = domain.Principal{Email: "alice@example.com", Role: domain.RoleUser}
	bob   = domain.Principal{Email: "bob@example.com", Role: domain.RoleUser}
	root  = domain.Principal{Email: "root@example.com", Role: domain.RoleAdmin}
)

func newCatFixture(t *testing.T) (*CatService, *stubCatRepo, *domain.Breed) {
	t.Helper()
	cats := newStubCatRepo()
	breeds := newStubBreedRepo()
	breed, err := breeds.Create(context.Background(), &domain.Breed{Name: "siamese"})
	if err != nil {
		t.Fatalf("seed breed: %v", err)
	}
	return NewCatService(cats, breeds, zerolog.Nop()), cats, breed
}

func TestCatService_Create(t *testing.T) {
	svc, _, breed := newCatFixture(t)

	cat, err := svc.Create(context.Background(), ports.CreateCatInput{
		Principal: alice,
		Name:      "mittens",
		Age:       3,
		Sex:       "female",
		BreedID:   breed.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cat.OwnerEmail != alice.Email {
		t.Fatalf("expected owner %q, got %q", alice.Email, cat.OwnerEmail)
	}
	if cat.ID == 0 {
		t.Fatalf("expected assigned ID")
	}
}

func TestCatService_Create_UnknownBreed(t *testing.T) {
	svc, _, _ := newCatFixture(t)

	if _, err := svc.Create(context.Background(), ports.CreateCatInput{
		Principal: alice,
		Name:      "mittens",
		BreedID:   999,
	}); err != domain.ErrBreedNotFound {
		t.Fatalf("expected ErrBreedNotFound, got %v", err)
	}
}

func TestCatService_Update_Ownership(t *testing.T) {
	svc, _, breed := newCatFixture(t)

	cat, err := svc.Create(context.Background(), ports.CreateCatInput{
		Principal: alice, Name: "mittens", Age: 3, Sex: "female", BreedID: breed.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "socks"

	// A different user may not touch it.
	if _, err := svc.Update(context.Background(), ports.UpdateCatInput{
		ID: cat.ID, Principal: bob, Name: &name,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	// The owner may.
	updated, err := svc.Update(context.Background(), ports.UpdateCatInput{
		ID: cat.ID, Principal: alice, Name: &name,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "socks" {
		t.Fatalf("expected renamed cat, got %q", updated.Name)
	}
	if updated.Age != 3 || updated.Sex != "female" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	// So may an admin who does not own it.
	age := 4
	updated, err = svc.Update(context.Background(), ports.UpdateCatInput{
		ID: cat.ID, Principal: root, Age: &age,
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Age != 4 {
		t.Fatalf("expected age 4, got %d", updated.Age)
	}
}

func TestCatService_Update_UnknownBreed(t *testing.T) {
	svc, _, breed := newCatFixture(t)

	cat, _ := svc.Create(context.Background(), ports.CreateCatInput{
		Principal: alice, Name: "mittens", BreedID: breed.ID,
	})

	bad := uint(999)
	if _, err := svc.Update(context.Background(), ports.UpdateCatInput{
		ID: cat.ID, Principal: alice, BreedID: &bad,
	}); err != domain.ErrBreedNotFound {
		t.Fatalf("expected ErrBreedNotFound, got %v", err)
	}
}

func TestCatService_Delete_Ownership(t *testing.T) {
	svc, _, breed := newCatFixture(t)

	cat, _ := svc.Create(context.Background(), ports.CreateCatInput{
		Principal: alice, Name: "mittens", BreedID: breed.ID,
	})

	if err := svc.Delete(context.Background(), cat.ID, bob); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), cat.ID, alice); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	// Soft-deleted rows vanish from reads.
	if _, err := svc.Get(context.Background(), cat.ID); err != domain.ErrCatNotFound {
		t.Fatalf("expected ErrCatNotFound after delete, got %v", err)
	}
	list, total, err := svc.List(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(list) != 0 {
		t.Fatalf("expected empty list after delete, got total=%d len=%d", total, len(list))
	}

	// Deleting again reports not found.
	if err := svc.Delete(context.Background(), cat.ID, root); err != domain.ErrCatNotFound {
		t.Fatalf("expected ErrCatNotFound on second delete, got %v", err)
	}
}

func TestCatService_List_Pagination(t *testing.T) {
	svc, _, breed := newCatFixture(t)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), ports.CreateCatInput{
			Principal: alice, Name: "cat", BreedID: breed.ID,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, total, err := svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(page))
	}
	if page[0].ID != 3 || page[1].ID != 4 {
		t.Fatalf("unexpected page contents: %d, %d", page[0].ID, page[1].ID)
	}
}
