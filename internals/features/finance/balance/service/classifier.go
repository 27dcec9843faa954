// file: internals/features/finance/balance/service/classifier.go
package service

import "strings"

// =========================================================
// KLASIFIKASI FEE HEAD — bucket Academic vs Transport
// =========================================================

type FeeHeadCategory int

const (
	CategoryAcademic FeeHeadCategory = iota
	CategoryTransport
)

func (c FeeHeadCategory) String() string {
	if c == CategoryTransport {
		return "transport"
	}
	return "academic"
}

// DefaultTransportPatterns: fallback substring saat heading tidak terdaftar
// di tabel struktur transport. Spot fee transport sering dicatat dengan
// heading bebas, jadi set-membership saja tidak cukup.
var DefaultTransportPatterns = []string{"transp", "bus", "van"}

// ClassifierPolicy bisa dioverride per sekolah lewat fee_category_policies.
type ClassifierPolicy struct {
	TransportHeadings map[string]struct{} // key sudah lower+trim
	TransportPatterns []string
}

// NewClassifierPolicy menggabungkan heading eksplisit dan daftar pola.
// patterns kosong → pakai DefaultTransportPatterns.
func NewClassifierPolicy(headings []string, patterns []string) ClassifierPolicy {
	set := make(map[string]struct{}, len(headings))
	for _, h := range headings {
		key := canonHead(h)
		if key != "" {
			set[key] = struct{}{}
		}
	}
	if len(patterns) == 0 {
		patterns = DefaultTransportPatterns
	}
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return ClassifierPolicy{TransportHeadings: set, TransportPatterns: lowered}
}

// FeeHeadClassifier memutuskan bucket sebuah fee heading.
// Aturan dua tingkat: set eksplisit dulu, lalu pola substring.
// Hasilnya stabil selama satu run laporan (policy tidak dimutasi).
type FeeHeadClassifier struct {
	policy ClassifierPolicy
}

func NewFeeHeadClassifier(policy ClassifierPolicy) *FeeHeadClassifier {
	return &FeeHeadClassifier{policy: policy}
}

func (c *FeeHeadClassifier) Classify(heading string) FeeHeadCategory {
	key := canonHead(heading)
	if _, ok := c.policy.TransportHeadings[key]; ok {
		return CategoryTransport
	}
	for _, p := range c.policy.TransportPatterns {
		if strings.Contains(key, p) {
			return CategoryTransport
		}
	}
	return CategoryAcademic
}

// canonHead: bentuk kanonik heading untuk pencocokan set/filter.
func canonHead(heading string) string {
	return strings.ToLower(strings.TrimSpace(heading))
}
