// file: internals/features/finance/feesetup/dto/fee_category_policy_dto.go
package dto

import (
	"schoolku_backend/internals/features/finance/feesetup/model"
)

type FeeCategoryPolicyResponse struct {
	PolicyID          string   `json:"policy_id,omitempty"`
	TransportHeadings []string `json:"transport_headings"`
	TransportPatterns []string `json:"transport_patterns"`
}

type FeeCategoryPolicyUpdateDTO struct {
	TransportHeadings []string `json:"transport_headings" validate:"dive,min=1"`
	TransportPatterns []string `json:"transport_patterns" validate:"dive,min=1"`
}

func ToFeeCategoryPolicyResponse(m model.FeeCategoryPolicy) FeeCategoryPolicyResponse {
	return FeeCategoryPolicyResponse{
		PolicyID:          m.PolicyID.String(),
		TransportHeadings: append([]string(nil), m.PolicyTransportHeadings...),
		TransportPatterns: append([]string(nil), m.PolicyTransportPatterns...),
	}
}
