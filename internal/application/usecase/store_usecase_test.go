package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type fakeKYCRepo struct {
	byID map[string]*entity.KYCSubmission
}

func newFakeKYCRepo() *fakeKYCRepo {
	return &fakeKYCRepo{byID: map[string]*entity.KYCSubmission{}}
}

func (f *fakeKYCRepo) Create(kyc *entity.KYCSubmission) error {
	f.byID[kyc.ID] = kyc
	return nil
}

func (f *fakeKYCRepo) GetByID(id string) (*entity.KYCSubmission, error) { return f.byID[id], nil }

func (f *fakeKYCRepo) GetByOwner(ownerID string) (*entity.KYCSubmission, error) {
	var latest *entity.KYCSubmission
	for _, k := range f.byID {
		if k.OwnerID == ownerID && (latest == nil || k.CreatedAt.After(latest.CreatedAt)) {
			latest = k
		}
	}
	return latest, nil
}

func (f *fakeKYCRepo) ListByStatus(status string, limit, offset int) ([]*entity.KYCSubmission, error) {
	out := []*entity.KYCSubmission{}
	for _, k := range f.byID {
		if k.Status == status {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeKYCRepo) UpdateStatus(id, status, reason string) error {
	if k, ok := f.byID[id]; ok {
		k.Status = status
		k.Reason = reason
	}
	return nil
}

type fakeStoreRepo struct {
	byID map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{byID: map[string]*entity.Store{}}
}

func (f *fakeStoreRepo) Create(store *entity.Store) error {
	f.byID[store.ID] = store
	return nil
}

func (f *fakeStoreRepo) GetByID(id string) (*entity.Store, error) { return f.byID[id], nil }

func (f *fakeStoreRepo) GetByOwner(ownerID string) (*entity.Store, error) {
	for _, s := range f.byID {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.byID[id], nil }

func (f *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateRole(userID, role string) error {
	if u, ok := f.byID[userID]; ok {
		u.Role = role
	}
	return nil
}

func newStoreFixture() (*fakeKYCRepo, *fakeStoreRepo, *fakeUserRepo, *StoreUseCase) {
	kycs := newFakeKYCRepo()
	stores := newFakeStoreRepo()
	users := newFakeUserRepo()
	users.byID["u1"] = &entity.User{ID: "u1", Phone: "+573001234567", Role: entity.RoleCustomer, Status: "active"}
	return kycs, stores, users, NewStoreUseCase(kycs, stores, users)
}

func submitKYC(t *testing.T, uc *StoreUseCase, userID string) *dto.KYCResponse {
	t.Helper()
	resp, err := uc.SubmitKYC(userID, dto.SubmitKYCRequest{
		FullName:       "Ana Pérez",
		DocumentType:   "cedula",
		DocumentNumber: "10203040",
	})
	require.NoError(t, err)
	return resp
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestSubmitKYC_QuedaPendiente(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	resp := submitKYC(t, uc, "u1")
	assert.Equal(t, entity.KYCStatusPending, resp.Status)

	status, err := uc.GetKYCStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, status.ID)
}

func TestSubmitKYC_PendienteBloqueaReenvio(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	submitKYC(t, uc, "u1")
	_, err := uc.SubmitKYC("u1", dto.SubmitKYCRequest{FullName: "Ana", DocumentType: "cedula", DocumentNumber: "1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReviewKYC_AprobarPromueveAOwner(t *testing.T) {
	_, _, users, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	resp, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: true})
	require.NoError(t, err)

	assert.Equal(t, entity.KYCStatusApproved, resp.Status)
	assert.Equal(t, entity.RoleOwner, users.byID["u1"].Role)
}

func TestReviewKYC_RechazoExigeMotivo(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	_, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: false, Reason: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: false, Reason: "documento ilegible"})
	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusRejected, resp.Status)
	assert.Equal(t, "documento ilegible", resp.Reason)
}

func TestReviewKYC_RechazadaPermiteReintentar(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	_, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: false, Reason: "documento ilegible"})
	require.NoError(t, err)

	resp := submitKYC(t, uc, "u1")
	assert.Equal(t, entity.KYCStatusPending, resp.Status)
}

func TestReviewKYC_YaRevisadaEsConflicto(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	_, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: true})
	require.NoError(t, err)

	_, err = uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: true})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateStore_SinKYCAprobado(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	_, err := uc.CreateStore("u1", dto.CreateStoreRequest{Name: "La Tienda", Slug: "la-tienda"})
	assert.ErrorIs(t, err, domain.ErrKYCNotApproved)

	submitKYC(t, uc, "u1")
	_, err = uc.CreateStore("u1", dto.CreateStoreRequest{Name: "La Tienda", Slug: "la-tienda"})
	assert.ErrorIs(t, err, domain.ErrKYCNotApproved) // pendiente tampoco basta
}

func TestCreateStore_ConKYCAprobado(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	_, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: true})
	require.NoError(t, err)

	store, err := uc.CreateStore("u1", dto.CreateStoreRequest{Name: "La Tienda", Slug: "la-tienda", Address: "Calle 1 # 2-3"})
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusActive, store.Status)
	assert.Equal(t, "u1", store.OwnerID)
}

func TestCreateStore_UnaPorOwner(t *testing.T) {
	_, _, _, uc := newStoreFixture()

	kyc := submitKYC(t, uc, "u1")
	_, err := uc.ReviewKYC(kyc.ID, dto.ReviewKYCRequest{Approve: true})
	require.NoError(t, err)

	_, err = uc.CreateStore("u1", dto.CreateStoreRequest{Name: "La Tienda", Slug: "la-tienda"})
	require.NoError(t, err)

	_, err = uc.CreateStore("u1", dto.CreateStoreRequest{Name: "Otra", Slug: "otra"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
