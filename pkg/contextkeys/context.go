package contextkeys

// Custom key type so values set by middleware cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle is stored.
const DBContextKey = contextKey("db")
