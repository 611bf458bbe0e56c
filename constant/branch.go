package constant

type BranchStatus int

const (
	BranchStatusActive   BranchStatus = 1
	BranchStatusInactive BranchStatus = 2
)
