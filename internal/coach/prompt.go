package coach

import (
	"fmt"
	"strings"
)

const promptTemplate = `Based on the goal: %s and the following fitness metrics: %s, generate:
1. A customized workout plan.
2. A personalized dietary plan.
3. Additional fitness tips or motivational messages.

Format:
- Day 1: ...
Workout Plan:
- Day 2: ...
...

Dietary Plan:
- Breakfast: ...
- Lunch: ...
- Dinner: ...
...

Tips:
1. Tip 1
2. Tip 2
...

End with a unique motivational quote.
`

// BuildPrompt embeds the user's goal and metrics in the plan request.
func BuildPrompt(goal, metrics string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(goal), strings.TrimSpace(metrics))
}
