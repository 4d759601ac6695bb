package handler

import (
	"time"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// CareSymbolDTO is a catalog entry with its derived attributes. Absent limits are null.
type CareSymbolDTO struct {
	Code                   string `json:"code"`
	Label                  string `json:"label"`
	Category               string `json:"category"`
	MaxWashTemperatureC    *int   `json:"maxWashTemperatureC"`
	Agitation              string `json:"agitation"`
	CanTumbleDry           bool   `json:"canTumbleDry"`
	DryerTemperatureLimitC *int   `json:"dryerTemperatureLimitC"`
	MaxIronTemperatureC    *int   `json:"maxIronTemperatureC"`
	IsDelicate             bool   `json:"isDelicate"`
}

func optionalInt(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func toCareSymbolDTO(s domain.CareSymbol) CareSymbolDTO {
	return CareSymbolDTO{
		Code:                   string(s),
		Label:                  s.Label(),
		Category:               string(s.Category()),
		MaxWashTemperatureC:    optionalInt(s.MaxWashTemperatureC()),
		Agitation:              string(s.AgitationLevel()),
		CanTumbleDry:           s.CanTumbleDry(),
		DryerTemperatureLimitC: optionalInt(s.DryerTemperatureLimitC()),
		MaxIronTemperatureC:    optionalInt(s.MaxIronTemperatureC()),
		IsDelicate:             s.IsDelicate(),
	}
}

// GarmentDTO is the JSON representation of a garment.
type GarmentDTO struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Brand        string               `json:"brand"`
	Color        string               `json:"color"`
	ColorGroup   string               `json:"colorGroup"`
	Composition  []domain.Composition `json:"composition"`
	Category     string               `json:"category"`
	SubCategory  string               `json:"subCategory"`
	Season       string               `json:"season"`
	Style        string               `json:"style"`
	State        string               `json:"state"`
	CareSymbols  []domain.CareSymbol  `json:"careSymbols"`
	WearCount    int                  `json:"wearCount"`
	LastWashedAt *string              `json:"lastWashedAt"`
	PurchaseDate string               `json:"purchaseDate"`
	UpdatedAt    string               `json:"updatedAt"`
}

func toGarmentDTO(g *domain.Garment) GarmentDTO {
	dto := GarmentDTO{
		ID:           g.ID,
		Name:         g.Name,
		Brand:        g.Brand,
		Color:        g.Color,
		ColorGroup:   string(domain.ClassifyColor(g.Color)),
		Composition:  g.Composition,
		Category:     string(g.Category),
		SubCategory:  string(g.SubCategory),
		Season:       string(g.Season),
		Style:        string(g.Style),
		State:        string(g.State),
		CareSymbols:  g.CareSymbols,
		WearCount:    g.WearCount,
		PurchaseDate: g.PurchaseDate.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
	if dto.Composition == nil {
		dto.Composition = []domain.Composition{}
	}
	if dto.CareSymbols == nil {
		dto.CareSymbols = []domain.CareSymbol{}
	}
	if g.LastWashedAt != nil {
		s := g.LastWashedAt.Format(time.RFC3339)
		dto.LastWashedAt = &s
	}
	return dto
}

func toGarmentDTOs(garments []domain.Garment) []GarmentDTO {
	dtos := make([]GarmentDTO, len(garments))
	for i := range garments {
		dtos[i] = toGarmentDTO(&garments[i])
	}
	return dtos
}

// BinDTO describes a laundry bin.
type BinDTO struct {
	Bin         string `json:"bin"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func toBinDTO(b domain.LaundryBin) BinDTO {
	return BinDTO{Bin: string(b), Label: b.Label(), Description: b.Description()}
}

// BinGroupDTO is one bin with the garments suggested for it.
type BinGroupDTO struct {
	BinDTO
	Garments []GarmentDTO `json:"garments"`
}

func toBinGroupDTOs(groups []service.BinGroup) []BinGroupDTO {
	dtos := make([]BinGroupDTO, len(groups))
	for i, g := range groups {
		dtos[i] = BinGroupDTO{BinDTO: toBinDTO(g.Bin), Garments: toGarmentDTOs(g.Garments)}
	}
	return dtos
}

// WashSessionDTO is the JSON representation of a wash session and its plan.
type WashSessionDTO struct {
	ID                 int64        `json:"id"`
	Bin                BinDTO       `json:"bin"`
	Status             string       `json:"status"`
	Garments           []GarmentDTO `json:"garments"`
	TargetTemperatureC int          `json:"targetTemperatureC"`
	SuggestedProgram   string       `json:"suggestedProgram"`
	Warnings           []string     `json:"warnings"`
	CreatedAt          string       `json:"createdAt"`
	CompletedAt        *string      `json:"completedAt"`
}

func toWashSessionDTO(s *domain.WashSession) WashSessionDTO {
	dto := WashSessionDTO{
		ID:                 s.ID,
		Bin:                toBinDTO(s.Bin),
		Status:             string(s.Status),
		Garments:           toGarmentDTOs(s.Garments),
		TargetTemperatureC: s.TargetTemperatureC,
		SuggestedProgram:   s.SuggestedProgram,
		Warnings:           s.Warnings,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
	}
	if dto.Warnings == nil {
		dto.Warnings = []string{}
	}
	if s.CompletedAt != nil {
		c := s.CompletedAt.Format(time.RFC3339)
		dto.CompletedAt = &c
	}
	return dto
}

// ApplianceDTO is the washing machine upkeep state.
type ApplianceDTO struct {
	CyclesSinceLastClean int  `json:"cyclesSinceLastClean"`
	CleaningThreshold    int  `json:"cleaningThreshold"`
	NeedsCleaning        bool `json:"needsCleaning"`
}

func toApplianceDTO(a domain.ApplianceStatus) ApplianceDTO {
	return ApplianceDTO{
		CyclesSinceLastClean: a.CyclesSinceLastClean,
		CleaningThreshold:    a.CleaningThreshold,
		NeedsCleaning:        a.NeedsCleaning(),
	}
}
