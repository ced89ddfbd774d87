package repository

// Op is a filter comparison operator.
type Op string

const (
	// OpEq matches on exact equality.
	OpEq Op = "eq"
	// OpContainsFold matches a case-insensitive substring against a text
	// field (the SQL adapter compiles it to ILIKE '%value%').
	OpContainsFold Op = "contains_fold"
)

// Cond is a single filter predicate against a mapper-defined field name.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Query is a lazily-evaluated, composable view over all rows of an entity
// kind. Callers chain predicates and hints before handing it to Find or
// First; nothing executes until then. Field names are defined by each
// entity's mapper, which may expose joined fields (e.g. the owner's name
// on a todo).
type Query struct {
	conds   []Cond
	orderBy string
	noTrack bool
}

func NewQuery() *Query {
	return &Query{}
}

// Where appends a predicate; all predicates are combined with AND.
func (q *Query) Where(field string, op Op, value any) *Query {
	q.conds = append(q.conds, Cond{Field: field, Op: op, Value: value})
	return q
}

// OrderBy sets the field results are sorted by, ascending.
func (q *Query) OrderBy(field string) *Query {
	q.orderBy = field
	return q
}

// NoTracking marks the query as a read-only traversal. It is a performance
// hint only: adapters may skip defensive copies, and callers promise not to
// mutate what they get back.
func (q *Query) NoTracking() *Query {
	q.noTrack = true
	return q
}

func (q *Query) Conds() []Cond   { return q.conds }
func (q *Query) Order() string   { return q.orderBy }
func (q *Query) Untracked() bool { return q.noTrack }
