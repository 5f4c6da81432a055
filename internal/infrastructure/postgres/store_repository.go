package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)
var _ repository.KYCRepository = (*KYCRepo)(nil)

const storeColumns = `id, owner_id, kyc_id, name, slug, address, status, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda. El unique sobre owner_id garantiza una tienda por owner.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, owner_id, kyc_id, name, slug, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.OwnerID, store.KYCID, store.Name, store.Slug, store.Address,
		store.Status, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.getOne(`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetByOwner obtiene la tienda de un owner.
func (r *StoreRepo) GetByOwner(ownerID string) (*entity.Store, error) {
	return r.getOne(`SELECT `+storeColumns+` FROM stores WHERE owner_id = $1`, ownerID)
}

func (r *StoreRepo) getOne(query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.OwnerID, &s.KYCID, &s.Name, &s.Slug, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

const kycColumns = `id, owner_id, full_name, document_type, document_number, documents, status, reason, created_at, updated_at`

// KYCRepo implementación del puerto KYCRepository sobre PostgreSQL.
type KYCRepo struct {
	q Querier
}

// NewKYCRepository construye el adaptador de persistencia para solicitudes KYC. Pasar pool o tx (Querier).
func NewKYCRepository(q Querier) *KYCRepo {
	return &KYCRepo{q: q}
}

// Create persiste una solicitud KYC.
func (r *KYCRepo) Create(kyc *entity.KYCSubmission) error {
	query := `
		INSERT INTO kyc_submissions (id, owner_id, full_name, document_type, document_number, documents, status, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		kyc.ID, kyc.OwnerID, kyc.FullName, kyc.DocumentType, kyc.DocumentNumber,
		kyc.Documents, kyc.Status, kyc.Reason, kyc.CreatedAt, kyc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kyc: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud KYC por ID.
func (r *KYCRepo) GetByID(id string) (*entity.KYCSubmission, error) {
	return r.getOne(`SELECT `+kycColumns+` FROM kyc_submissions WHERE id = $1`, id)
}

// GetByOwner obtiene la solicitud KYC más reciente de un owner.
func (r *KYCRepo) GetByOwner(ownerID string) (*entity.KYCSubmission, error) {
	return r.getOne(`SELECT `+kycColumns+` FROM kyc_submissions WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 1`, ownerID)
}

// ListByStatus lista solicitudes por estado con paginación (cola de revisión del admin).
func (r *KYCRepo) ListByStatus(status string, limit, offset int) ([]*entity.KYCSubmission, error) {
	query := `SELECT ` + kycColumns + `
		FROM kyc_submissions WHERE status = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kyc: %w", err)
	}
	defer rows.Close()
	var list []*entity.KYCSubmission
	for rows.Next() {
		var k entity.KYCSubmission
		if err := rows.Scan(&k.ID, &k.OwnerID, &k.FullName, &k.DocumentType, &k.DocumentNumber,
			&k.Documents, &k.Status, &k.Reason, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kyc: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la solicitud y guarda el motivo.
func (r *KYCRepo) UpdateStatus(id, status, reason string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE kyc_submissions SET status = $2, reason = $3, updated_at = now() WHERE id = $1`,
		id, status, reason,
	)
	if err != nil {
		return fmt.Errorf("update kyc status: %w", err)
	}
	return nil
}

func (r *KYCRepo) getOne(query string, arg any) (*entity.KYCSubmission, error) {
	var k entity.KYCSubmission
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&k.ID, &k.OwnerID, &k.FullName, &k.DocumentType, &k.DocumentNumber,
		&k.Documents, &k.Status, &k.Reason, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kyc: %w", err)
	}
	return &k, nil
}
