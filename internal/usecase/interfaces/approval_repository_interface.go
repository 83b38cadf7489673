package interfaces

import (
	"context"
	"fleet_maintenance/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=approval_repository_interface.go -destination=mocks/approval_repository_interface_mock.go -package=mock_interfaces

// IApprovalRepository abstracts persistence for Approval records.
//
// Decide persists a decision only while the stored record is still pending; it reports
// false when the record is missing or was already decided.

type IApprovalRepository interface {
	Create(ctx context.Context, a entities.Approval) (entities.Approval, error)
	GetByID(ctx context.Context, id string) (entities.Approval, error)
	ListByReference(ctx context.Context, refType entities.ApprovalReferenceType, refID string) ([]entities.Approval, error)
	Decide(ctx context.Context, a entities.Approval) (bool, error)
}

// IRequisitionRepository abstracts persistence for Requisition and its lines.
//
// ApplyLineDecision writes the line's decision on the given track together with the
// requisition's derived status, atomically and only while that track is still pending.
// It reports false when the track was decided concurrently.

type IRequisitionRepository interface {
	Create(ctx context.Context, r entities.Requisition) (entities.Requisition, error)
	GetByID(ctx context.Context, id string) (entities.Requisition, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Requisition, error)
	GetLineByID(ctx context.Context, lineID string) (entities.RequisitionLine, error)
	ApplyLineDecision(ctx context.Context, line entities.RequisitionLine, track entities.ReviewTrack, status entities.RequisitionStatus, at time.Time) (bool, error)
}
