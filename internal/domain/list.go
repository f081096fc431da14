package domain

// Entity is any record stored in a collection and addressed by ID.
type Entity interface {
	EntityID() string
}

// TripScoped is an entity stored in a global collection and associated with
// a trip through its tripId foreign key.
type TripScoped interface {
	Entity
	TripKey() string
}

// The helpers below never mutate their input and always return a non-nil
// slice, so the result can be written back as a whole collection.

// Prepend returns a new list with item first.
func Prepend[T Entity](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

// Append returns a new list with item last.
func Append[T Entity](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// Replace returns a new list where the record sharing item's ID is swapped
// for item. Other records are copied unchanged.
func Replace[T Entity](list []T, item T) []T {
	id := item.EntityID()
	return Map(list, id, func(T) T { return item })
}

// Map returns a new list where fn is applied to the record with the given ID.
func Map[T Entity](list []T, id string, fn func(T) T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if v.EntityID() == id {
			v = fn(v)
		}
		out = append(out, v)
	}
	return out
}

// Remove returns a new list without the record with the given ID.
// Removing an unknown ID yields an equal list.
func Remove[T Entity](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if v.EntityID() != id {
			out = append(out, v)
		}
	}
	return out
}

// Find returns the record with the given ID.
func Find[T Entity](list []T, id string) (T, bool) {
	for _, v := range list {
		if v.EntityID() == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether a record with the given ID exists.
func Contains[T Entity](list []T, id string) bool {
	_, ok := Find(list, id)
	return ok
}

// FilterByTrip returns the records whose tripId equals tripID.
func FilterByTrip[T TripScoped](list []T, tripID string) []T {
	out := make([]T, 0)
	for _, v := range list {
		if v.TripKey() == tripID {
			out = append(out, v)
		}
	}
	return out
}
