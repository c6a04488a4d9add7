package manufacturing

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a business has no manufacturing details row.
var ErrNotFound = errors.New("manufacturing details not found")

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL manufacturing repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateDetails(ctx context.Context, d *Details) error {
	query := `
		INSERT INTO manufacturing_details
			(business_id, production_capacity, manufacturing_license, iso_certification, haccp_certification, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		d.BusinessID, d.ProductionCapacity, d.ManufacturingLicense,
		d.ISOCertification, d.HACCPCertification, d.Description).
		Scan(&d.ID, &d.CreatedAt)
}

func (r *postgresRepo) GetDetailsByBusiness(ctx context.Context, businessID int64) (*Details, error) {
	d := &Details{}
	query := `
		SELECT id, business_id, production_capacity, manufacturing_license,
		       COALESCE(iso_certification, ''), COALESCE(haccp_certification, ''),
		       COALESCE(description, ''), created_at
		FROM manufacturing_details
		WHERE business_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, businessID).Scan(
		&d.ID, &d.BusinessID, &d.ProductionCapacity, &d.ManufacturingLicense,
		&d.ISOCertification, &d.HACCPCertification, &d.Description, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *postgresRepo) UpdateDetails(ctx context.Context, d *Details) error {
	query := `
		UPDATE manufacturing_details
		SET production_capacity = $1, manufacturing_license = $2,
		    iso_certification = $3, haccp_certification = $4, description = $5
		WHERE business_id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		d.ProductionCapacity, d.ManufacturingLicense,
		d.ISOCertification, d.HACCPCertification, d.Description, d.BusinessID)
	return err
}

func (r *postgresRepo) CreateBatch(ctx context.Context, b *Batch) error {
	query := `
		INSERT INTO batch_production
			(business_id, batch_number, manufacturing_date, expiry_date, production_facility,
			 quality_report_url, supervisor, testing_parameters, storage_conditions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		b.BusinessID, b.BatchNumber, b.ManufacturingDate, b.ExpiryDate, b.ProductionFacility,
		b.QualityReportURL, b.Supervisor, b.TestingParameters, b.StorageConditions).
		Scan(&b.ID, &b.CreatedAt)
}

func (r *postgresRepo) ListBatches(ctx context.Context, businessID int64) ([]*Batch, error) {
	query := `
		SELECT id, business_id, batch_number, manufacturing_date, expiry_date,
		       COALESCE(production_facility, ''), COALESCE(quality_report_url, ''),
		       COALESCE(supervisor, ''), COALESCE(testing_parameters, ''),
		       COALESCE(storage_conditions, ''), created_at
		FROM batch_production
		WHERE business_id = $1
		ORDER BY manufacturing_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []*Batch{}
	for rows.Next() {
		b := &Batch{}
		if err := rows.Scan(&b.ID, &b.BusinessID, &b.BatchNumber, &b.ManufacturingDate,
			&b.ExpiryDate, &b.ProductionFacility, &b.QualityReportURL, &b.Supervisor,
			&b.TestingParameters, &b.StorageConditions, &b.CreatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *postgresRepo) CreatePackaging(ctx context.Context, p *PackagingCompliance) error {
	query := `
		INSERT INTO packaging_compliance
			(business_id, material_type, fssai_compliant, tamper_proof_method, labeling_details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		p.BusinessID, p.MaterialType, p.FSSAICompliant, p.TamperProofMethod, p.LabelingDetails).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *postgresRepo) ListPackaging(ctx context.Context, businessID int64) ([]*PackagingCompliance, error) {
	query := `
		SELECT id, business_id, material_type, fssai_compliant,
		       COALESCE(tamper_proof_method, ''), COALESCE(labeling_details, ''), created_at
		FROM packaging_compliance
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*PackagingCompliance{}
	for rows.Next() {
		p := &PackagingCompliance{}
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.MaterialType, &p.FSSAICompliant,
			&p.TamperProofMethod, &p.LabelingDetails, &p.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (r *postgresRepo) CreateSupplier(ctx context.Context, s *Supplier) error {
	query := `
		INSERT INTO raw_material_suppliers
			(business_id, supplier_name, supplier_certification, contact_info, materials_provided,
			 origin_country, traceability_info, compliance_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		s.BusinessID, s.SupplierName, s.SupplierCertification, s.ContactInfo,
		s.MaterialsProvided, s.OriginCountry, s.TraceabilityInfo, s.ComplianceStatus).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *postgresRepo) ListSuppliers(ctx context.Context, businessID int64) ([]*Supplier, error) {
	query := `
		SELECT id, business_id, supplier_name, COALESCE(supplier_certification, ''),
		       COALESCE(contact_info, ''), COALESCE(materials_provided, ''),
		       COALESCE(origin_country, ''), COALESCE(traceability_info, ''),
		       COALESCE(compliance_status, ''), created_at
		FROM raw_material_suppliers
		WHERE business_id = $1
		ORDER BY supplier_name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []*Supplier{}
	for rows.Next() {
		s := &Supplier{}
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.SupplierName, &s.SupplierCertification,
			&s.ContactInfo, &s.MaterialsProvided, &s.OriginCountry, &s.TraceabilityInfo,
			&s.ComplianceStatus, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}
