package apisports

import (
	"encoding/json"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// text accepts a JSON string, number or null. The provider switches between
// them for the same field (ratings, pass accuracy, stat values).
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "" || raw == "null":
		*t = ""
	case raw[0] == '"':
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(strings.TrimSpace(s))
	default:
		*t = text(raw)
	}
	return nil
}

// Int parses counts like 12, "12" or "45%". Unparseable values are 0.
func (t text) Int() int {
	s := strings.TrimSuffix(strings.TrimSpace(string(t)), "%")
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

type ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type birth struct {
	Date    string `json:"date"`
	Place   string `json:"place"`
	Country string `json:"country"`
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Flag string `json:"flag"`
	} `json:"country"`
	Seasons []struct {
		Year    int    `json:"year"`
		Start   string `json:"start"`
		End     string `json:"end"`
		Current bool   `json:"current"`
	} `json:"seasons"`
}

type teamItem struct {
	Team struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Code     string `json:"code"`
		Country  string `json:"country"`
		Founded  int    `json:"founded"`
		National bool   `json:"national"`
		Logo     string `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		Capacity int    `json:"capacity"`
		Surface  string `json:"surface"`
		Image    string `json:"image"`
	} `json:"venue"`
}

type coachItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Age         int    `json:"age"`
	Birth       birth  `json:"birth"`
	Nationality string `json:"nationality"`
	Height      text   `json:"height"`
	Weight      text   `json:"weight"`
	Photo       string `json:"photo"`
	Team        ref    `json:"team"`
	Career      []struct {
		Team  ref    `json:"team"`
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"career"`
}

type playerInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Photo       string `json:"photo"`
	Age         int    `json:"age"`
	Birth       birth  `json:"birth"`
	Nationality string `json:"nationality"`
	Height      text   `json:"height"`
	Weight      text   `json:"weight"`
	Injured     bool   `json:"injured"`
}

// figures is the counting block shared by season and per-fixture player stats.
type figures struct {
	Shots struct {
		Total text `json:"total"`
		On    text `json:"on"`
	} `json:"shots"`
	Goals struct {
		Total    text `json:"total"`
		Conceded text `json:"conceded"`
		Assists  text `json:"assists"`
		Saves    text `json:"saves"`
	} `json:"goals"`
	Passes struct {
		Total    text `json:"total"`
		Key      text `json:"key"`
		Accuracy text `json:"accuracy"`
	} `json:"passes"`
	Tackles struct {
		Total         text `json:"total"`
		Blocks        text `json:"blocks"`
		Interceptions text `json:"interceptions"`
	} `json:"tackles"`
	Duels struct {
		Total text `json:"total"`
		Won   text `json:"won"`
	} `json:"duels"`
	Dribbles struct {
		Attempts text `json:"attempts"`
		Success  text `json:"success"`
		Past     text `json:"past"`
	} `json:"dribbles"`
	Fouls struct {
		Drawn     text `json:"drawn"`
		Committed text `json:"committed"`
	} `json:"fouls"`
	Cards struct {
		Yellow    text `json:"yellow"`
		YellowRed text `json:"yellowred"`
		Red       text `json:"red"`
	} `json:"cards"`
	Penalty struct {
		Won       text `json:"won"`
		Committed text `json:"commited"`
		Scored    text `json:"scored"`
		Missed    text `json:"missed"`
		Saved     text `json:"saved"`
	} `json:"penalty"`
}

type playerItem struct {
	Player     playerInfo `json:"player"`
	Statistics []struct {
		Team   ref `json:"team"`
		League struct {
			ID     int64  `json:"id"`
			Name   string `json:"name"`
			Season int    `json:"season"`
		} `json:"league"`
		Games struct {
			Appearences int    `json:"appearences"`
			Lineups     int    `json:"lineups"`
			Minutes     int    `json:"minutes"`
			Number      *int   `json:"number"`
			Position    string `json:"position"`
			Rating      text   `json:"rating"`
			Captain     bool   `json:"captain"`
		} `json:"games"`
		Substitutes struct {
			In    int `json:"in"`
			Out   int `json:"out"`
			Bench int `json:"bench"`
		} `json:"substitutes"`
		figures
	} `json:"statistics"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureSide struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Logo   string `json:"logo"`
		Season int    `json:"season"`
		Round  string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home fixtureSide `json:"home"`
		Away fixtureSide `json:"away"`
	} `json:"teams"`
	Goals scorePair `json:"goals"`
	Score struct {
		Halftime  scorePair `json:"halftime"`
		Fulltime  scorePair `json:"fulltime"`
		Extratime scorePair `json:"extratime"`
		Penalty   scorePair `json:"penalty"`
	} `json:"score"`
}

type statisticsItem struct {
	Team       ref `json:"team"`
	Statistics []struct {
		Type  string `json:"type"`
		Value text   `json:"value"`
	} `json:"statistics"`
}

type person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team     ref    `json:"team"`
	Player   person `json:"player"`
	Assist   person `json:"assist"`
	Type     string `json:"type"`
	Detail   string `json:"detail"`
	Comments string `json:"comments"`
}

type lineupEntry struct {
	Player struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Number *int   `json:"number"`
		Pos    string `json:"pos"`
		Grid   string `json:"grid"`
	} `json:"player"`
}

type lineupItem struct {
	Team struct {
		ID     int64           `json:"id"`
		Name   string          `json:"name"`
		Logo   string          `json:"logo"`
		Colors json.RawMessage `json:"colors"`
	} `json:"team"`
	Coach struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Photo string `json:"photo"`
	} `json:"coach"`
	Formation   string        `json:"formation"`
	StartXI     []lineupEntry `json:"startXI"`
	Substitutes []lineupEntry `json:"substitutes"`
}

type fixturePlayersItem struct {
	Team    ref `json:"team"`
	Players []struct {
		Player struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Photo string `json:"photo"`
		} `json:"player"`
		Statistics []struct {
			Games struct {
				Minutes    int    `json:"minutes"`
				Number     *int   `json:"number"`
				Position   string `json:"position"`
				Rating     text   `json:"rating"`
				Captain    bool   `json:"captain"`
				Substitute bool   `json:"substitute"`
			} `json:"games"`
			Offsides text `json:"offsides"`
			figures
		} `json:"statistics"`
	} `json:"players"`
}

type standingsItem struct {
	League struct {
		ID        int64           `json:"id"`
		Season    int             `json:"season"`
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}

type standingRow struct {
	Rank        int    `json:"rank"`
	Team        ref    `json:"team"`
	Points      int    `json:"points"`
	GoalsDiff   int    `json:"goalsDiff"`
	Group       string `json:"group"`
	Form        string `json:"form"`
	Status      string `json:"status"`
	Description string `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
	Update string `json:"update"`
}

type transfersItem struct {
	Player    person `json:"player"`
	Transfers []struct {
		Date  string `json:"date"`
		Type  string `json:"type"`
		Teams struct {
			In  ref `json:"in"`
			Out ref `json:"out"`
		} `json:"teams"`
	} `json:"transfers"`
}
