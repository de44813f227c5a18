package models

import (
	"errors"
	"fmt"
)

// ErrUnknownFundingProgramme is returned when a funding programme code is not in the catalog.
var ErrUnknownFundingProgramme = errors.New("unknown funding programme")

type (
	SchemeType       string // Whether a scheme is developing a design or building it
	FundingProgramme string // Funding programme code, e.g. ATF4
)

const (
	Development  SchemeType = "DEVELOPMENT"
	Construction SchemeType = "CONSTRUCTION"

	ATF2   FundingProgramme = "ATF2"
	ATF3   FundingProgramme = "ATF3"
	ATF4   FundingProgramme = "ATF4"
	ATF4E  FundingProgramme = "ATF4E"
	ATF5   FundingProgramme = "ATF5"
	MRN    FundingProgramme = "MRN"
	LUF1   FundingProgramme = "LUF1"
	LUF2   FundingProgramme = "LUF2"
	LUF3   FundingProgramme = "LUF3"
	CRSTS2 FundingProgramme = "CRSTS2"
)

type fundingProgrammeInfo struct {
	underEmbargo               bool
	eligibleForAuthorityUpdate bool
}

var fundingProgrammes = []FundingProgramme{ATF2, ATF3, ATF4, ATF4E, ATF5, MRN, LUF1, LUF2, LUF3, CRSTS2}

var fundingProgrammeInfos = map[FundingProgramme]fundingProgrammeInfo{
	ATF2:   {underEmbargo: false, eligibleForAuthorityUpdate: true},
	ATF3:   {underEmbargo: false, eligibleForAuthorityUpdate: true},
	ATF4:   {underEmbargo: false, eligibleForAuthorityUpdate: true},
	ATF4E:  {underEmbargo: false, eligibleForAuthorityUpdate: true},
	ATF5:   {underEmbargo: true, eligibleForAuthorityUpdate: true},
	MRN:    {underEmbargo: false, eligibleForAuthorityUpdate: false},
	LUF1:   {underEmbargo: false, eligibleForAuthorityUpdate: false},
	LUF2:   {underEmbargo: false, eligibleForAuthorityUpdate: false},
	LUF3:   {underEmbargo: false, eligibleForAuthorityUpdate: false},
	CRSTS2: {underEmbargo: false, eligibleForAuthorityUpdate: false},
}

// SchemeTypes returns every scheme type.
func SchemeTypes() []SchemeType {
	return []SchemeType{Development, Construction}
}

// FundingProgrammes returns every funding programme in catalog order.
func FundingProgrammes() []FundingProgramme {
	return append([]FundingProgramme(nil), fundingProgrammes...)
}

// FundingProgrammeByCode looks up a funding programme by its code.
func FundingProgrammeByCode(code string) (FundingProgramme, error) {
	p := FundingProgramme(code)
	if _, ok := fundingProgrammeInfos[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFundingProgramme, code)
	}
	return p, nil
}

// Code returns the programme code.
func (p FundingProgramme) Code() string {
	return string(p)
}

// IsUnderEmbargo reports whether schemes in the programme must not be shown publicly yet.
func (p FundingProgramme) IsUnderEmbargo() bool {
	return fundingProgrammeInfos[p].underEmbargo
}

// IsEligibleForAuthorityUpdate reports whether authorities may update schemes in the programme.
func (p FundingProgramme) IsEligibleForAuthorityUpdate() bool {
	return fundingProgrammeInfos[p].eligibleForAuthorityUpdate
}
