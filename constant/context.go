package constant

type contextKey string

const (
	ActorKey contextKey = "actor"
)
