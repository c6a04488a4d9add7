package manufacturing

import "time"

// Details is the 1:1 manufacturing extension of a manufacturer business,
// created once during manufacturing onboarding.
type Details struct {
	ID                   int64     `json:"id"`
	BusinessID           int64     `json:"business_id"`
	ProductionCapacity   string    `json:"production_capacity"`
	ManufacturingLicense string    `json:"manufacturing_license"`
	ISOCertification     string    `json:"iso_certification,omitempty"`
	HACCPCertification   string    `json:"haccp_certification,omitempty"`
	Description          string    `json:"description,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Batch is one production run of a manufactured product.
type Batch struct {
	ID                 int64     `json:"id"`
	BusinessID         int64     `json:"business_id"`
	BatchNumber        string    `json:"batch_number"`
	ManufacturingDate  string    `json:"manufacturing_date"`
	ExpiryDate         string    `json:"expiry_date"`
	ProductionFacility string    `json:"production_facility,omitempty"`
	QualityReportURL   string    `json:"quality_report_url,omitempty"`
	Supervisor         string    `json:"supervisor,omitempty"`
	TestingParameters  string    `json:"testing_parameters,omitempty"`
	StorageConditions  string    `json:"storage_conditions,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// PackagingCompliance records packaging material compliance for a manufacturer.
type PackagingCompliance struct {
	ID                int64     `json:"id"`
	BusinessID        int64     `json:"business_id"`
	MaterialType      string    `json:"material_type"`
	FSSAICompliant    bool      `json:"fssai_compliant"`
	TamperProofMethod string    `json:"tamper_proof_method,omitempty"`
	LabelingDetails   string    `json:"labeling_details,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Supplier is a raw material supplier used by a manufacturer.
type Supplier struct {
	ID                    int64     `json:"id"`
	BusinessID            int64     `json:"business_id"`
	SupplierName          string    `json:"supplier_name"`
	SupplierCertification string    `json:"supplier_certification,omitempty"`
	ContactInfo           string    `json:"contact_info,omitempty"`
	MaterialsProvided     string    `json:"materials_provided,omitempty"`
	OriginCountry         string    `json:"origin_country,omitempty"`
	TraceabilityInfo      string    `json:"traceability_info,omitempty"`
	ComplianceStatus      string    `json:"compliance_status,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// DetailsInput is the manufacturing details payload submitted at onboarding.
type DetailsInput struct {
	ProductionCapacity   string `json:"production_capacity"`
	ManufacturingLicense string `json:"manufacturing_license"`
	ISOCertification     string `json:"iso_certification"`
	HACCPCertification   string `json:"haccp_certification"`
	Description          string `json:"description"`
}
