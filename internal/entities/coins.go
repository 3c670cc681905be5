package entities

import (
	"fmt"
	"strings"
)

// Copper values of each coin denomination.
const (
	CopperPerSilver   int64 = 10
	CopperPerGold     int64 = 100
	CopperPerPlatinum int64 = 1000
)

// Coins is an amount of money broken into denominations.
type Coins struct {
	Platinum int32 `json:"platinum"`
	Gold     int32 `json:"gold"`
	Silver   int32 `json:"silver"`
	Copper   int32 `json:"copper"`
}

// TotalCopper returns the amount as a single copper value.
func (c Coins) TotalCopper() int64 {
	return int64(c.Platinum)*CopperPerPlatinum +
		int64(c.Gold)*CopperPerGold +
		int64(c.Silver)*CopperPerSilver +
		int64(c.Copper)
}

// CoinsFromCopper breaks a copper amount into gold, silver, and copper.
// Platinum is never minted here; prices and change are quoted in gold.
// Negative amounts are treated as zero.
func CoinsFromCopper(copper int64) Coins {
	if copper < 0 {
		copper = 0
	}
	c := Coins{}
	c.Gold = int32(copper / CopperPerGold)
	copper %= CopperPerGold
	c.Silver = int32(copper / CopperPerSilver)
	c.Copper = int32(copper % CopperPerSilver)
	return c
}

// GoldCoins returns an amount of whole gold pieces.
func GoldCoins(gold int32) Coins {
	return Coins{Gold: gold}
}

// String renders the amount as "3 gp, 5 sp". A zero amount renders
// as "0 cp".
func (c Coins) String() string {
	parts := make([]string, 0, 4)
	if c.Platinum > 0 {
		parts = append(parts, fmt.Sprintf("%d pp", c.Platinum))
	}
	if c.Gold > 0 {
		parts = append(parts, fmt.Sprintf("%d gp", c.Gold))
	}
	if c.Silver > 0 {
		parts = append(parts, fmt.Sprintf("%d sp", c.Silver))
	}
	if c.Copper > 0 {
		parts = append(parts, fmt.Sprintf("%d cp", c.Copper))
	}
	if len(parts) == 0 {
		return "0 cp"
	}
	return strings.Join(parts, ", ")
}
