package dice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-builder/internal/dice"
	"github.com/KirkDiggler/character-builder/internal/errors"
)

type RollerTestSuite struct {
	suite.Suite
}

func (s *RollerTestSuite) newRoller(seed uint64, rerollFloor int) *dice.Roller {
	roller, err := dice.New(&dice.Config{
		Source:      dice.NewSeededSource(seed),
		RerollFloor: rerollFloor,
	})
	s.Require().NoError(err)
	return roller
}

func (s *RollerTestSuite) TestConfigValidation() {
	_, err := dice.New(&dice.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = dice.New(&dice.Config{Source: dice.NewSeededSource(1), RerollFloor: 6})
	s.Error(err)

	_, err = dice.New(nil)
	s.Error(err)
}

func (s *RollerTestSuite) TestUnknownMethod() {
	roller := s.newRoller(1, 0)
	_, err := roller.RollAbilityScores("heroic")
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *RollerTestSuite) TestArrayMethodIsFixed() {
	roller := s.newRoller(42, 0)
	scores, err := roller.RollAbilityScores(dice.MethodArray)
	s.NoError(err)
	s.Equal([]int32{15, 14, 13, 12, 10, 8}, scores)

	// Same result regardless of the source state.
	again, err := roller.RollAbilityScores(dice.MethodArray)
	s.NoError(err)
	s.Equal(scores, again)
}

func (s *RollerTestSuite) TestSeededRollsAreDeterministic() {
	first := s.newRoller(7, 0)
	second := s.newRoller(7, 0)

	a, err := first.RollAbilityScores(dice.MethodStandard)
	s.NoError(err)
	b, err := second.RollAbilityScores(dice.MethodStandard)
	s.NoError(err)
	s.Equal(a, b)
}

func (s *RollerTestSuite) TestScoresSortedAndInRange() {
	roller := s.newRoller(99, 0)
	for i := 0; i < 100; i++ {
		scores, err := roller.RollAbilityScores(dice.MethodStandard)
		s.NoError(err)
		s.Len(scores, dice.AbilityCount)
		for j, v := range scores {
			s.GreaterOrEqual(v, int32(3))
			s.LessOrEqual(v, int32(18))
			if j > 0 {
				s.LessOrEqual(v, scores[j-1])
			}
		}
	}
}

func (s *RollerTestSuite) TestClassicRange() {
	roller := s.newRoller(5, 0)
	for i := 0; i < 100; i++ {
		scores, err := roller.RollAbilityScores(dice.MethodClassic)
		s.NoError(err)
		for _, v := range scores {
			s.GreaterOrEqual(v, int32(3))
			s.LessOrEqual(v, int32(18))
		}
	}
}

func (s *RollerTestSuite) TestRerollFloorRaisesMinimum() {
	roller := s.newRoller(11, 2)
	for i := 0; i < 200; i++ {
		scores, err := roller.RollAbilityScores(dice.MethodStandard)
		s.NoError(err)
		for _, v := range scores {
			// Each kept die is at least 3, so three dice sum to 9+.
			s.GreaterOrEqual(v, int32(9))
		}
	}
}

// TestStandardDistribution checks the roller against the known
// distribution of best-three-of-4d6: mean 12.2446, variance 8.19.
func (s *RollerTestSuite) TestStandardDistribution() {
	const n = 10000
	roller := s.newRoller(12345, 0)

	var sum, sumSq float64
	var count int
	for i := 0; i < n/dice.AbilityCount+1; i++ {
		scores, err := roller.RollAbilityScores(dice.MethodStandard)
		s.Require().NoError(err)
		for _, v := range scores {
			f := float64(v)
			sum += f
			sumSq += f * f
			count++
		}
	}

	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	s.InDelta(12.2446, mean, 0.15)
	s.InDelta(8.19, variance, 0.8)
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}
