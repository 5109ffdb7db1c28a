package fingerprint

// Package fingerprint digests the combined raw source payloads so a run
// can tell whether anything changed since the last delivered message.

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// combined is serialized with encoding/json, which writes struct fields
// in declaration order and map keys sorted, making the digest stable
// under key reordering in the source payloads.
type combined struct {
	Github string `json:"github"`
	Yasno  string `json:"yasno"`
}

// Combined digests the GitHub source's precomputed content hash together
// with the canonicalized Yasno payload. Either input may be empty when
// that source failed.
func Combined(githubContentHash string, yasnoRaw json.RawMessage) (string, error) {
	yasno := ""
	if len(yasnoRaw) > 0 {
		canonical, err := Canonicalize(yasnoRaw)
		if err != nil {
			return "", fmt.Errorf("canonicalize yasno payload: %w", err)
		}
		yasno = canonical
	}
	data, err := json.Marshal(combined{Github: githubContentHash, Yasno: yasno})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Canonicalize re-encodes raw JSON through generic values so that
// equivalent documents with reordered keys serialize identically.
func Canonicalize(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
