package list

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona-lab/l99/errors"
)

// MarshalJSON encodes the list as a JSON array. Nil encodes as [].
func (l List[E]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(l.Slice())
	if err != nil {
		return nil, errors.Wrap(err, "marshal list")
	}

	return data, nil
}

// UnmarshalJSON decodes a JSON array into the list. null decodes as Nil.
func (l *List[E]) UnmarshalJSON(data []byte) error {
	var vals []E

	err := json.Unmarshal(data, &vals)
	if err != nil {
		return errors.Wrap(err, "unmarshal list")
	}

	*l = FromSlice(vals)

	return nil
}

// MarshalBSONValue implements [bson.ValueMarshaler]. The list is encoded as a BSON array.
func (l List[E]) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(l.Slice())
	if err != nil {
		return 0, nil, errors.Wrap(err, "marshal list")
	}

	return byte(typ), data, nil
}

// UnmarshalBSONValue implements [bson.ValueUnmarshaler].
func (l *List[E]) UnmarshalBSONValue(typ byte, data []byte) error {
	if bson.Type(typ) == bson.TypeNull {
		*l = List[E]{}
		return nil
	}

	var vals []E

	err := bson.RawValue{Type: bson.Type(typ), Value: data}.Unmarshal(&vals)
	if err != nil {
		return errors.Wrap(err, "unmarshal list")
	}

	*l = FromSlice(vals)

	return nil
}
