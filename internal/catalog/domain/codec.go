package domain

import (
	"encoding/json"
	"fmt"
)

func (e Electronics) MarshalJSON() ([]byte, error) {
	type plain Electronics
	return json.Marshal(struct {
		Category Category `json:"category"`
		plain
	}{e.Category(), plain(e)})
}

func (c Clothing) MarshalJSON() ([]byte, error) {
	type plain Clothing
	return json.Marshal(struct {
		Category Category `json:"category"`
		plain
	}{c.Category(), plain(c)})
}

func (b Book) MarshalJSON() ([]byte, error) {
	type plain Book
	return json.Marshal(struct {
		Category Category `json:"category"`
		plain
	}{b.Category(), plain(b)})
}

// DecodeVariant decodes a single catalog item, choosing the variant by its
// "category" field.
func DecodeVariant(data []byte) (Variant, error) {
	var tag struct {
		Category Category `json:"category"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.Category {
	case CategoryElectronics:
		return decodeAs[Electronics](data)
	case CategoryClothing:
		return decodeAs[Clothing](data)
	case CategoryBook:
		return decodeAs[Book](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, tag.Category)
	}
}

func DecodeCatalog(data []byte) ([]Variant, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make([]Variant, 0, len(raw))
	for i, item := range raw {
		v, err := DecodeVariant(item)
		if err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeAs[V Variant](data []byte) (Variant, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
