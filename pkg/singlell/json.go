package singlell

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the list as an array in iteration order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the contents with the decoded array. On error the
// list keeps its previous contents.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	values := make([]T, 0)
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	tmp := From(values...)
	l.Swap(tmp)

	return nil
}
