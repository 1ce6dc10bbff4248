package repository

// WithCondition adds a field = value equality condition. Stores use
// this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value})
		return q
	}
}

// WithID filters by primary key.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithLimit caps the number of returned rows.
func WithLimit(limit int) Option {
	return func(q Query) Query {
		q.limit = limit
		return q
	}
}

// WithOffset skips the first offset rows.
func WithOffset(offset int) Option {
	return func(q Query) Query {
		q.offset = offset
		return q
	}
}

// OrderByCreatedAtDesc sorts newest first.
func OrderByCreatedAtDesc() Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: "created_at", ascending: false})
		return q
	}
}
