package weather

import "encoding/json"

// EncodeJSON is the wire codec used by internal/gateway.KafkaSource's
// peers when publishing records, and by KafkaSource itself when
// decoding them back out.
func EncodeJSON(d Data) ([]byte, error) {
	return json.Marshal(d)
}

// DecodeJSON is the inverse of EncodeJSON.
func DecodeJSON(b []byte) (Data, error) {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, err
	}
	return d, nil
}
