package mongodb

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var tDecimal = reflect.TypeOf(decimal.Decimal{})

// decimalCodec stores decimal.Decimal as BSON Decimal128 so quantities and
// prices survive the round trip without float drift.
type decimalCodec struct{}

func (decimalCodec) EncodeValue(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDecimal {
		return bson.ValueEncoderError{Name: "decimalCodec", Types: []reflect.Type{tDecimal}, Received: val}
	}
	dec := val.Interface().(decimal.Decimal)
	d128, err := bson.ParseDecimal128(dec.String())
	if err != nil {
		return fmt.Errorf("encode decimal %q: %w", dec.String(), err)
	}
	return vw.WriteDecimal128(d128)
}

func (decimalCodec) DecodeValue(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDecimal {
		return bson.ValueDecoderError{Name: "decimalCodec", Types: []reflect.Type{tDecimal}, Received: val}
	}
	var s string
	switch vr.Type() {
	case bson.TypeDecimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		s = d128.String()
	case bson.TypeString:
		str, err := vr.ReadString()
		if err != nil {
			return err
		}
		s = str
	case bson.TypeNull:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		s = "0"
	default:
		return fmt.Errorf("cannot decode %v into decimal.Decimal", vr.Type())
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("decode decimal %q: %w", s, err)
	}
	val.Set(reflect.ValueOf(dec))
	return nil
}

// newRegistry returns the default registry with the decimal codec installed.
func newRegistry() *bson.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tDecimal, decimalCodec{})
	reg.RegisterTypeDecoder(tDecimal, decimalCodec{})
	return reg
}
