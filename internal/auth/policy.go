package auth

// OperationCategory groups API operations for authorization purposes.
// Routes declare their category once; the policy table below decides which
// role claims may invoke them. This replaces per-route role matching with a
// single lookup evaluated before the request reaches the core.
type OperationCategory string

const (
	// OpTransactions covers transaction CRUD and every aggregation query.
	OpTransactions OperationCategory = "transactions"
	// OpCategoryRead covers listing categories and adding new ones.
	OpCategoryRead OperationCategory = "categories.read"
	// OpEntityAdmin covers account, role, and category management.
	OpEntityAdmin OperationCategory = "entities.admin"
)

// Policy maps an operation category to the set of permitted role claims.
type Policy map[OperationCategory][]string

// DefaultPolicy mirrors the shipped authorization rules: authenticated users
// read and write their transaction data and see categories; administrative
// entity management requires the ADMIN claim.
func DefaultPolicy() Policy {
	return Policy{
		OpTransactions: {"ADMIN", "USER"},
		OpCategoryRead: {"ADMIN", "USER"},
		OpEntityAdmin:  {"ADMIN"},
	}
}

// Allows reports whether the given role claim may invoke operations in the
// category. Unknown categories permit nothing.
func (p Policy) Allows(category OperationCategory, role string) bool {
	for _, allowed := range p[category] {
		if allowed == role {
			return true
		}
	}
	return false
}
