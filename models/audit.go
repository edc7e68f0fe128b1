package models

// AuditStatus is the payment verdict recorded for an audited vehicle.
type AuditStatus string

const (
	StatusUnknown AuditStatus = "unknown"
	StatusPaid    AuditStatus = "paid"
	StatusUnpaid  AuditStatus = "unpaid"
	StatusExempt  AuditStatus = "exempt"
	StatusFlagged AuditStatus = "flagged"
)

// AuditPayload holds the audit fields captured in the field and delivered to
// the server: the recognised plate, the GPS fix, the parking zone, the OCR
// confidence for the plate candidate, the payment verdict, free-form notes,
// and a reference to the stored capture image.
type AuditPayload struct {
	PlateNumber string      `json:"plate_number"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Zone        string      `json:"zone"`
	Confidence  float64     `json:"confidence"`
	Status      AuditStatus `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	ImageRef    string      `json:"image_ref,omitempty"`
}
