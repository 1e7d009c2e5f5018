package impl

import "github.com/google/uuid"

// classifyTransfer partitions the source's membership against what the target
// already owns. Ids absent from targetOwned are safe to transfer; ids present
// are duplicates whose source copy must be discarded rather than moved.
// Source order is preserved in both partitions.
func classifyTransfer(sourceIDs, targetOwned []uuid.UUID) (transfer, duplicate []uuid.UUID) {
	owned := make(map[uuid.UUID]struct{}, len(targetOwned))
	for _, id := range targetOwned {
		owned[id] = struct{}{}
	}

	transfer = make([]uuid.UUID, 0, len(sourceIDs))
	duplicate = make([]uuid.UUID, 0, len(targetOwned))
	for _, id := range sourceIDs {
		if _, ok := owned[id]; ok {
			duplicate = append(duplicate, id)
		} else {
			transfer = append(transfer, id)
		}
	}

	return transfer, duplicate
}
