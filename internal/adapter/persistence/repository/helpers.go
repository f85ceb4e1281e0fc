package repository

import (
	"encoding/json"

	"gera_wallet/internal/domain/entities"
)

const passKeyPrefix = "pass:"

func passKey(serialNumber string) string {
	return passKeyPrefix + serialNumber
}

func encodeStoredPass(p entities.StoredPass) ([]byte, error) {
	return json.Marshal(p)
}

func decodeStoredPass(b []byte) (entities.StoredPass, error) {
	var p entities.StoredPass
	if err := json.Unmarshal(b, &p); err != nil {
		return entities.StoredPass{}, err
	}
	return p, nil
}
