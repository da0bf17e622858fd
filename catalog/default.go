// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/danielhkuo/pickparty/models"

// Default is the category set for the event.
var Default = []models.Category{
	// Game outcome
	{
		ID: "winner", Name: "Super Bowl Winner", Icon: "Trophy", Group: models.GroupOutcome,
		Options: []models.Option{
			{ID: "seahawks", Label: "Seattle Seahawks", Sublabel: "NFC Champions"},
			{ID: "patriots", Label: "New England Patriots", Sublabel: "AFC Champions"},
		},
	},
	{
		ID: "margin", Name: "Winning Margin", Icon: "ChartBar", Group: models.GroupOutcome,
		Options: []models.Option{
			{ID: "1-3", Label: "1-3 points", Sublabel: "Nail-biter"},
			{ID: "4-7", Label: "4-7 points", Sublabel: "Close game"},
			{ID: "8-14", Label: "8-14 points", Sublabel: "Comfortable"},
			{ID: "15-21", Label: "15-21 points", Sublabel: "Dominant"},
			{ID: "22+", Label: "22+ points", Sublabel: "Blowout"},
		},
	},
	{
		ID: "total-points", Name: "Total Points", Icon: "Target", Group: models.GroupOutcome,
		Options: []models.Option{
			{ID: "under", Label: "Under 44.5", Sublabel: "Defense wins"},
			{ID: "over", Label: "Over 44.5", Sublabel: "Shootout"},
		},
	},
	{
		ID: "first-half", Name: "First Half Winner", Icon: "Timer", Group: models.GroupOutcome,
		Options: []models.Option{
			{ID: "seahawks", Label: "Seattle Seahawks"},
			{ID: "patriots", Label: "New England Patriots"},
			{ID: "tie", Label: "Tie", Sublabel: "Halftime deadlock"},
		},
	},
	{
		ID: "first-to-score", Name: "First Team to Score", Icon: "NumberCircleOne", Group: models.GroupOutcome,
		Options: []models.Option{
			{ID: "seahawks", Label: "Seattle Seahawks"},
			{ID: "patriots", Label: "New England Patriots"},
		},
	},

	// Player props
	{
		ID: "mvp", Name: "Super Bowl MVP", Icon: "Star", Group: models.GroupPlayer,
		Options: []models.Option{
			{ID: "geno-smith", Label: "Geno Smith", Sublabel: "SEA · QB"},
			{ID: "drake-maye", Label: "Drake Maye", Sublabel: "NE · QB"},
			{ID: "dk-metcalf", Label: "DK Metcalf", Sublabel: "SEA · WR"},
			{ID: "jaxon-smith-njigba", Label: "Jaxon Smith-Njigba", Sublabel: "SEA · WR"},
			{ID: "kenneth-walker", Label: "Kenneth Walker III", Sublabel: "SEA · RB"},
			{ID: "rhamondre-stevenson", Label: "Rhamondre Stevenson", Sublabel: "NE · RB"},
			{ID: "hunter-henry", Label: "Hunter Henry", Sublabel: "NE · TE"},
			{ID: "defensive-player", Label: "Defensive Player", Sublabel: "Any team"},
		},
	},
	{
		ID: "first-td", Name: "First TD Scorer", Icon: "PersonSimpleRun", Group: models.GroupPlayer,
		Options: []models.Option{
			{ID: "dk-metcalf", Label: "DK Metcalf", Sublabel: "SEA · WR"},
			{ID: "jaxon-smith-njigba", Label: "Jaxon Smith-Njigba", Sublabel: "SEA · WR"},
			{ID: "kenneth-walker", Label: "Kenneth Walker III", Sublabel: "SEA · RB"},
			{ID: "tyler-lockett", Label: "Tyler Lockett", Sublabel: "SEA · WR"},
			{ID: "noah-fant", Label: "Noah Fant", Sublabel: "SEA · TE"},
			{ID: "rhamondre-stevenson", Label: "Rhamondre Stevenson", Sublabel: "NE · RB"},
			{ID: "hunter-henry", Label: "Hunter Henry", Sublabel: "NE · TE"},
			{ID: "demario-douglas", Label: "DeMario Douglas", Sublabel: "NE · WR"},
			{ID: "kayshon-boutte", Label: "Kayshon Boutte", Sublabel: "NE · WR"},
			{ID: "antonio-gibson", Label: "Antonio Gibson", Sublabel: "NE · RB"},
			{ID: "other", Label: "Other / Defense / ST", Sublabel: "Anyone else"},
		},
	},
	{
		ID: "passing-yards", Name: "Most Passing Yards", Icon: "Football", Group: models.GroupPlayer,
		Options: []models.Option{
			{ID: "geno-smith", Label: "Geno Smith", Sublabel: "SEA · QB"},
			{ID: "drake-maye", Label: "Drake Maye", Sublabel: "NE · QB"},
		},
	},
	{
		ID: "rushing-yards", Name: "Most Rushing Yards", Icon: "SneakerMove", Group: models.GroupPlayer,
		Options: []models.Option{
			{ID: "kenneth-walker", Label: "Kenneth Walker III", Sublabel: "SEA · RB"},
			{ID: "zach-charbonnet", Label: "Zach Charbonnet", Sublabel: "SEA · RB"},
			{ID: "rhamondre-stevenson", Label: "Rhamondre Stevenson", Sublabel: "NE · RB"},
			{ID: "antonio-gibson", Label: "Antonio Gibson", Sublabel: "NE · RB"},
		},
	},
	{
		ID: "receiving-yards", Name: "Most Receiving Yards", Icon: "HandGrabbing", Group: models.GroupPlayer,
		Options: []models.Option{
			{ID: "dk-metcalf", Label: "DK Metcalf", Sublabel: "SEA · WR"},
			{ID: "jaxon-smith-njigba", Label: "Jaxon Smith-Njigba", Sublabel: "SEA · WR"},
			{ID: "tyler-lockett", Label: "Tyler Lockett", Sublabel: "SEA · WR"},
			{ID: "noah-fant", Label: "Noah Fant", Sublabel: "SEA · TE"},
			{ID: "hunter-henry", Label: "Hunter Henry", Sublabel: "NE · TE"},
			{ID: "demario-douglas", Label: "DeMario Douglas", Sublabel: "NE · WR"},
		},
	},

	// Fun props
	{
		ID: "coin-toss", Name: "Coin Toss", Icon: "CurrencyCircleDollar", Group: models.GroupFun,
		Options: []models.Option{
			{ID: "heads", Label: "Heads"},
			{ID: "tails", Label: "Tails"},
		},
	},
	{
		ID: "anthem-length", Name: "National Anthem Length", Icon: "Microphone", Group: models.GroupFun,
		Options: []models.Option{
			{ID: "under", Label: "Under 2:00", Sublabel: "Quick & efficient"},
			{ID: "over", Label: "Over 2:00", Sublabel: "The full experience"},
		},
	},
	{
		ID: "gatorade", Name: "Gatorade Shower Color", Icon: "Drop", Group: models.GroupFun,
		Options: []models.Option{
			{ID: "orange", Label: "Orange"},
			{ID: "blue", Label: "Blue"},
			{ID: "yellow", Label: "Yellow / Green"},
			{ID: "red", Label: "Red / Pink"},
			{ID: "purple", Label: "Purple"},
			{ID: "clear", Label: "Clear / Water"},
		},
	},
	{
		ID: "first-score-type", Name: "First Scoring Play", Icon: "ListNumbers", Group: models.GroupFun,
		Options: []models.Option{
			{ID: "td-pass", Label: "Passing TD"},
			{ID: "td-rush", Label: "Rushing TD"},
			{ID: "fg", Label: "Field Goal"},
			{ID: "safety", Label: "Safety", Sublabel: "Bold pick!"},
		},
	},
	{
		ID: "q1-turnover", Name: "Turnover in Q1?", Icon: "ArrowsClockwise", Group: models.GroupFun,
		Options: []models.Option{
			{ID: "yes", Label: "Yes", Sublabel: "Early chaos"},
			{ID: "no", Label: "No", Sublabel: "Clean start"},
		},
	},
}
