package entities

import "time"

// ServiceOrder is the repair ticket entity.
//
// Domain notes:
//   - OrderNumber is the sequential human-readable id ("OS-001", "OS-002",
//     ...) allocated from an atomic counter at creation time.
//   - Status is resolved from StatusID at read time; a dangling reference
//     resolves to the UnknownStatus sentinel.
//   - ContractedServices is a snapshot of the client's contracted services
//     taken at creation time. It is intentionally not live-synced: the
//     order records what was contracted when the equipment came in.
//   - Logs and EditLogs are append-only. Logs[0] always records the
//     creation itself (fromStatus == toStatus == initial status id).
//
// Storage model (DynamoDB):
//   - PK: id
//   - logs / edit_logs appended with list_append so concurrent writers
//     never drop entries.

type ServiceOrder struct {
	ID                  string            `json:"id"`
	OrderNumber         string            `json:"order_number"`
	ClientID            string            `json:"client_id"`
	ClientName          string            `json:"client_name,omitempty"`
	Collaborator        Collaborator      `json:"collaborator"`
	Equipment           Equipment         `json:"equipment"`
	ReportedProblem     string            `json:"reported_problem"`
	Analyst             string            `json:"analyst"`
	StatusID            string            `json:"status_id"`
	Status              Status            `json:"status"`
	TechnicalSolution   string            `json:"technical_solution,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	Attachments         []string          `json:"attachments"`
	ContractedServices  []ProvidedService `json:"contracted_services"`
	ConfirmedServiceIDs []string          `json:"confirmed_service_ids"`
	Logs                []LogEntry        `json:"logs"`
	EditLogs            []EditLogEntry    `json:"edit_logs"`
}

// Collaborator is the client-side contact who handed in the equipment.
type Collaborator struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Equipment identifies the device under repair.
type Equipment struct {
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

// LogEntry is an immutable status-transition record. Once appended it is
// never mutated or removed.
type LogEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Responsible string    `json:"responsible"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Observation string    `json:"observation,omitempty"`
}

// EditLogEntry is an immutable record of a detail edit. It is only written
// when at least one field actually changed.
type EditLogEntry struct {
	Timestamp   time.Time       `json:"timestamp"`
	Responsible string          `json:"responsible"`
	Observation string          `json:"observation,omitempty"`
	Changes     []EditLogChange `json:"changes"`
}

// EditLogChange records a single field-level diff. Field is a dotted path
// for nested fields (e.g. "equipment.brand").
type EditLogChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}
