package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/versepath/scripture-companion/pkg/util"
)

const mockInsightContent = `**Context:** This verse was written to encourage believers in their faith journey.

**Application:** In our modern lives, this truth reminds us that God's promises remain constant regardless of our circumstances. When we face uncertainty, we can anchor ourselves in these timeless words.

**Key Takeaway:** Let this verse be a daily reminder that you are not alone - God's faithfulness extends to every moment of your life.`

const mockActionStepsTemplate = `1. **[Easy]** Set aside 5 minutes each morning this week to meditate on this verse and how it relates to %s in your life.

2. **[Medium]** Identify one specific area where you struggle with %s. Write down how this verse speaks to that struggle and share it with a trusted friend.

3. **[Challenging]** Choose one concrete action based on this verse's teaching about %s. Commit to it for the next 30 days and journal your experience.`

const mockReflectionContent = `**Personal:** What emotions or memories does this verse stir up in you? How might God be speaking to your current situation through these words?

**Relational:** How could applying this verse improve your relationships with family, friends, or coworkers this week?

**Spiritual:** What does this verse reveal about God's character? How does it deepen your understanding of His love for you?

**Practical:** What is one specific, measurable action you can take today to live out the truth of this verse?`

// mockService returns deterministic canned content with a simulated
// provider delay, so demo mode feels like a real inference round trip.
type mockService struct {
	delayScale float64
}

// MockOption configures the mock service.
type MockOption func(*mockService)

// WithoutDelay disables the simulated latency, for tests.
func WithoutDelay() MockOption {
	return func(m *mockService) { m.delayScale = 0 }
}

func NewMockService(opts ...MockOption) Service {
	m := &mockService{delayScale: 1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// simulate waits out the canned inference delay, honoring cancellation.
func (m *mockService) simulate(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * m.delayScale)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *mockService) CheckConnection(ctx context.Context) (*Status, error) {
	return &Status{
		Connected: true,
		Provider:  "lmstudio",
		Model:     "local-model",
	}, nil
}

func (m *mockService) GetInsight(ctx context.Context, verseText, reference string) (*Insight, error) {
	if err := m.simulate(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}
	return &Insight{Content: mockInsightContent, TokensUsed: 150}, nil
}

func (m *mockService) GenerateActionSteps(ctx context.Context, verseText, reference, topic string) (*Insight, error) {
	if err := m.simulate(ctx, 1200*time.Millisecond); err != nil {
		return nil, err
	}
	t := util.NormalizeTopic(topic)
	return &Insight{
		Content:    fmt.Sprintf(mockActionStepsTemplate, t, t, t),
		TokensUsed: 120,
	}, nil
}

func (m *mockService) GenerateReflectionQuestions(ctx context.Context, verseText, reference string) (*Insight, error) {
	if err := m.simulate(ctx, 1000*time.Millisecond); err != nil {
		return nil, err
	}
	return &Insight{Content: mockReflectionContent, TokensUsed: 100}, nil
}
