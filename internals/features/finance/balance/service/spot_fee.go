// file: internals/features/finance/balance/service/spot_fee.go
package service

import "github.com/shopspring/decimal"

// =========================================================
// SPOT FEE INFERENCER
// =========================================================

// SpotFeeInferencer mensintesis "fixed demand virtual" untuk fee yang tidak
// pernah dideklarasikan di tabel struktur: demand-nya didefinisikan mundur
// sebagai persis (paid + concession), sehingga balance spot fee selalu nol
// pada saat koleksi — tidak pernah negatif atau menggantung.
type SpotFeeInferencer struct{}

// MaybeInferFixed dipanggil sekali per (key, heading) saat heading pertama kali
// muncul dari log koleksi. Heading yang sudah punya fixed demand nyata dilewati;
// setelah inference, heading ditandai supaya grup berikutnya tidak dobel.
func (SpotFeeInferencer) MaybeInferFixed(acc *Accumulator, cat FeeHeadCategory, heading string, paidPlusConcession decimal.Decimal) {
	if acc.HasFixedHead(heading) {
		return
	}
	b := acc.bucket(cat)
	b.Fixed = b.Fixed.Add(paidPlusConcession)
	addDetail(b.FixedDetail, heading, paidPlusConcession)
	acc.MarkFixedHead(heading)
}
