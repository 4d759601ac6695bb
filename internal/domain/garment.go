package domain

import (
	"context"
	"time"
)

type GarmentCategory string

const (
	CategoryTop       GarmentCategory = "top"
	CategoryBottom    GarmentCategory = "bottom"
	CategoryOuterwear GarmentCategory = "outerwear"
	CategoryOnePiece  GarmentCategory = "onePiece"
	CategoryFootwear  GarmentCategory = "footwear"
	CategoryAccessory GarmentCategory = "accessory"
	CategoryLingerie  GarmentCategory = "lingerie"
	CategoryOther     GarmentCategory = "other"
)

// Label returns the display name of the category.
func (c GarmentCategory) Label() string {
	switch c {
	case CategoryTop:
		return "Upper Body"
	case CategoryBottom:
		return "Bottom"
	case CategoryOuterwear:
		return "Outerwear"
	case CategoryOnePiece:
		return "One Piece"
	case CategoryFootwear:
		return "Footwear"
	case CategoryAccessory:
		return "Accessory"
	case CategoryLingerie:
		return "Lingerie"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

// SubCategory is the finer garment type. Values are the stored display strings.
type SubCategory string

const (
	SubTShirts    SubCategory = "T-Shirts"
	SubShirts     SubCategory = "Shirts"
	SubBlouses    SubCategory = "Blouses"
	SubSweaters   SubCategory = "Sweaters"
	SubHoodies    SubCategory = "Hoodies"
	SubSweatshirt SubCategory = "Sweatshirt"
	SubTop        SubCategory = "Top"
	SubTankTops   SubCategory = "Tank Tops"
	SubBodysuits  SubCategory = "Bodysuits"

	SubJeans      SubCategory = "Jeans"
	SubTrousers   SubCategory = "Trousers"
	SubShorts     SubCategory = "Shorts"
	SubSkirts     SubCategory = "Skirts"
	SubLeggings   SubCategory = "Leggings"
	SubSweatpants SubCategory = "Sweatpants"

	SubCoats         SubCategory = "Coats"
	SubJackets       SubCategory = "Jackets"
	SubBlazers       SubCategory = "Blazers"
	SubPufferJackets SubCategory = "Puffer Jackets"
	SubRainwear      SubCategory = "Rainwear"

	SubDresses   SubCategory = "Dresses"
	SubJumpsuits SubCategory = "Jumpsuits"

	SubSneakers SubCategory = "Sneakers"
	SubBoots    SubCategory = "Boots"
	SubLoafers  SubCategory = "Loafers"
	SubHeels    SubCategory = "Heels"
	SubSandals  SubCategory = "Sandals"
	SubFlats    SubCategory = "Flats"
	SubSlippers SubCategory = "Slippers"

	SubBags    SubCategory = "Bags"
	SubBelts   SubCategory = "Belts"
	SubHats    SubCategory = "Hats"
	SubScarves SubCategory = "Scarves"
	SubJewelry SubCategory = "Jewelry"
	SubEyewear SubCategory = "Eyewear"
	SubWatches SubCategory = "Watches"

	SubBras              SubCategory = "Bras"
	SubSportsBras        SubCategory = "Sports Bras"
	SubBralettes         SubCategory = "Bralettes"
	SubPanties           SubCategory = "Panties"
	SubThongs            SubCategory = "Thongs & Tangas"
	SubBoxerShorts       SubCategory = "Boxer Shorts"
	SubBoxerBriefs       SubCategory = "Boxer Briefs"
	SubBriefs            SubCategory = "Briefs"
	SubSocks             SubCategory = "Socks"
	SubTights            SubCategory = "Tights / Collant"
	SubStockings         SubCategory = "Stockings"
	SubPajamas           SubCategory = "Pajamas"
	SubNightgowns        SubCategory = "Nightgowns"
	SubRobes             SubCategory = "Robes & Dressing Gowns"
	SubLingerieBodysuits SubCategory = "Lingerie Bodysuits"
	SubShapewear         SubCategory = "Shapewear"

	SubNone SubCategory = "None"
)

// SubCategories returns the sub-categories allowed for a category.
func (c GarmentCategory) SubCategories() []SubCategory {
	switch c {
	case CategoryTop:
		return []SubCategory{SubTShirts, SubShirts, SubBlouses, SubSweaters, SubHoodies, SubSweatshirt, SubTop, SubTankTops, SubBodysuits}
	case CategoryBottom:
		return []SubCategory{SubJeans, SubTrousers, SubShorts, SubSkirts, SubLeggings, SubSweatpants}
	case CategoryOuterwear:
		return []SubCategory{SubCoats, SubJackets, SubBlazers, SubPufferJackets, SubRainwear}
	case CategoryOnePiece:
		return []SubCategory{SubDresses, SubJumpsuits}
	case CategoryFootwear:
		return []SubCategory{SubSneakers, SubBoots, SubLoafers, SubHeels, SubSandals, SubFlats, SubSlippers}
	case CategoryAccessory:
		return []SubCategory{SubBags, SubBelts, SubHats, SubScarves, SubJewelry, SubEyewear, SubWatches}
	case CategoryLingerie:
		return []SubCategory{
			SubBras, SubSportsBras, SubBralettes, SubPanties, SubThongs,
			SubBoxerShorts, SubBoxerBriefs, SubBriefs,
			SubSocks, SubTights, SubStockings,
			SubPajamas, SubNightgowns, SubRobes,
			SubLingerieBodysuits, SubShapewear,
		}
	case CategoryOther:
		return []SubCategory{SubNone}
	}
	return nil
}

// GarmentCategories lists every category in display order.
var GarmentCategories = []GarmentCategory{
	CategoryTop, CategoryBottom, CategoryOuterwear, CategoryOnePiece,
	CategoryFootwear, CategoryAccessory, CategoryLingerie, CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c GarmentCategory) IsValid() bool {
	return c.SubCategories() != nil
}

// Allows reports whether sub is one of the category's sub-categories.
func (c GarmentCategory) Allows(sub SubCategory) bool {
	for _, s := range c.SubCategories() {
		if s == sub {
			return true
		}
	}
	return false
}

type Fabric string

// IsValid reports whether f is one of the known fabrics.
func (f Fabric) IsValid() bool {
	return f.Category() != ""
}

const (
	FabricCotton   Fabric = "Cotton"
	FabricWool     Fabric = "Wool"
	FabricSilk     Fabric = "Silk"
	FabricLinen    Fabric = "Linen"
	FabricHemp     Fabric = "Hemp"
	FabricLeather  Fabric = "Leather"
	FabricSuede    Fabric = "Suede"
	FabricCashmere Fabric = "Cashmere"

	FabricPolyester Fabric = "Polyester"
	FabricNylon     Fabric = "Nylon"
	FabricSpandex   Fabric = "Spandex"
	FabricViscose   Fabric = "Viscose"
	FabricAcrylic   Fabric = "Acrylic"

	FabricDenim  Fabric = "Denim"
	FabricVelvet Fabric = "Velvet"
	FabricFleece Fabric = "Fleece"
	FabricJersey Fabric = "Jersey"
)

// Fabrics lists every fabric in display order.
var Fabrics = []Fabric{
	FabricCotton, FabricWool, FabricSilk, FabricLinen, FabricHemp, FabricLeather, FabricSuede, FabricCashmere,
	FabricPolyester, FabricNylon, FabricSpandex, FabricViscose, FabricAcrylic,
	FabricDenim, FabricVelvet, FabricFleece, FabricJersey,
}

type FabricCategory string

const (
	FabricCategoryNatural   FabricCategory = "Natural Fibers"
	FabricCategorySynthetic FabricCategory = "Synthetic & Semis"
	FabricCategoryMix       FabricCategory = "Mixed & Others"
)

// Category returns the fiber family of the fabric, or "" for unknown fabrics.
func (f Fabric) Category() FabricCategory {
	switch f {
	case FabricCotton, FabricWool, FabricSilk, FabricLinen, FabricHemp, FabricLeather, FabricSuede, FabricCashmere:
		return FabricCategoryNatural
	case FabricPolyester, FabricNylon, FabricSpandex, FabricViscose, FabricAcrylic:
		return FabricCategorySynthetic
	case FabricDenim, FabricVelvet, FabricFleece, FabricJersey:
		return FabricCategoryMix
	}
	return ""
}

type Season string

const (
	SeasonSummer     Season = "Summer"
	SeasonWinter     Season = "Winter"
	SeasonSpring     Season = "Spring"
	SeasonSeasonLess Season = "SeasonLess"
)

type GarmentStyle string

const (
	StyleCasual   GarmentStyle = "Casual"
	StyleFormal   GarmentStyle = "Formal"
	StyleSporty   GarmentStyle = "Sporty"
	StyleElegant  GarmentStyle = "Elegant"
	StyleBusiness GarmentStyle = "Business"
)

type GarmentState string

const (
	StateAvailable   GarmentState = "Available"
	StateToWash      GarmentState = "To wash"
	StateAtLaundry   GarmentState = "At laundry"
	StateOnLoan      GarmentState = "On loan"
	StateUnderRepair GarmentState = "Under repair"
	StateDrying      GarmentState = "Drying"
)

// IsValid reports whether s is one of the known states.
func (s GarmentState) IsValid() bool {
	switch s {
	case StateAvailable, StateToWash, StateAtLaundry, StateOnLoan, StateUnderRepair, StateDrying:
		return true
	}
	return false
}

// ReadyToWash reports whether a garment in this state can join a wash load.
func (s GarmentState) ReadyToWash() bool {
	return s != StateDrying && s != StateOnLoan && s != StateUnderRepair
}

// ReadyToLend reports whether a garment in this state can be lent out.
func (s GarmentState) ReadyToLend() bool {
	return s != StateUnderRepair
}

// Composition is one fabric share of a garment, e.g. 95% cotton.
type Composition struct {
	Fabric     Fabric  `json:"fabric" validate:"required,fabric"`
	Percentage float64 `json:"percentage" validate:"gt=0,lte=100"`
}

// Garment is a closet item owned by a user.
type Garment struct {
	ID           int64
	UserID       int64
	Name         string
	Brand        string
	Color        string // hex, optional leading '#'
	Composition  []Composition
	Category     GarmentCategory
	SubCategory  SubCategory
	Season       Season
	Style        GarmentStyle
	State        GarmentState
	CareSymbols  []CareSymbol // unordered, unique
	WearCount    int
	LastWashedAt *time.Time
	PurchaseDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasFabric reports whether any composition entry is one of the given fabrics.
func (g *Garment) HasFabric(fabrics ...Fabric) bool {
	for _, c := range g.Composition {
		for _, f := range fabrics {
			if c.Fabric == f {
				return true
			}
		}
	}
	return false
}

type GarmentRepository interface {
	Create(ctx context.Context, garment *Garment) error
	GetByID(ctx context.Context, id int64) (*Garment, error)
	ListByUser(ctx context.Context, userID int64) ([]Garment, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Garment, error)
	Update(ctx context.Context, garment *Garment) error
	Delete(ctx context.Context, id int64) error
}
