package fsrs

import "fmt"

// CardStage identifies where a card sits in its learning lifecycle.
// It serializes as one of the strings "new", "learning", "review",
// "relearning", which is the persisted representation.
type CardStage int

const (
	StageNew CardStage = iota
	StageLearning
	StageReview
	StageRelearning
)

var stageNames = [...]string{
	StageNew:        "new",
	StageLearning:   "learning",
	StageReview:     "review",
	StageRelearning: "relearning",
}

func (s CardStage) isValid() bool {
	return s >= StageNew && s <= StageRelearning
}

func (s CardStage) String() string {
	if s.isValid() {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s CardStage) MarshalText() ([]byte, error) {
	if !s.isValid() {
		return nil, fmt.Errorf("invalid card stage %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CardStage) UnmarshalText(text []byte) error {
	for i, name := range stageNames {
		if name == string(text) {
			*s = CardStage(i)
			return nil
		}
	}
	return fmt.Errorf("invalid card stage %q", text)
}
