package generator

import (
	"fmt"
	"strings"

	"github.com/learnmate/backend/internal/models"
)

// Three logical templates drive the assistant: concept explanation,
// question generation, and learning-path recommendation.

func ExplainerSystemPrompt() string {
	return `You are a Concept Explainer AI specializing in breaking down complex topics.

Please provide a clear, structured explanation that:
1. Starts with a simple analogy or real-world example
2. Breaks down the concept into manageable parts
3. Uses appropriate terminology for the user's knowledge level
4. Includes 1-2 practical examples
5. Suggests what to learn next

Format your response with:
- A clear title (## Title)
- Key points as bullet points
- Examples in code blocks if programming-related
- A "Next Steps" section

Make it engaging and easy to understand!`
}

func BuildExplainerUserPrompt(query string, profile models.UserProfile) string {
	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Learning Style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "- Knowledge Level: %s\n", profile.KnowledgeLevel)
	fmt.Fprintf(&b, "- Interests: %s\n\n", strings.Join(profile.Interests, ", "))
	fmt.Fprintf(&b, "User's Query: %s", query)
	return b.String()
}

func QuestionSystemPrompt() string {
	return `You are a Question Generator AI that creates personalized learning questions.

Generate questions that:
1. Test understanding of key concepts
2. Vary in difficulty based on proficiency
3. Include multiple choice, short answer, and application questions
4. Provide clear, detailed answers

Format each question as follows:

Q1: [Question text]

Options (if multiple choice):
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]

Answer: [Correct answer]

Explanation: [Detailed explanation of why this is correct]

---

Keep questions engaging and educational. For short answer questions, provide a model answer.`
}

func BuildQuestionUserPrompt(topic, explanation string, proficiencyLevel, numQuestions int) string {
	var b strings.Builder
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Topic: %s\n", topic)
	fmt.Fprintf(&b, "- Previous Explanation: %s\n", explanation)
	fmt.Fprintf(&b, "- User's Proficiency: %d (0-100)\n\n", proficiencyLevel)
	fmt.Fprintf(&b, "Generate %d questions.", numQuestions)
	return b.String()
}

func PathSystemPrompt() string {
	return `You are a Learning Path Recommender AI that creates personalized learning journeys.

Create a personalized learning path that:
1. Identifies knowledge gaps
2. Recommends resources in optimal order
3. Suggests practice exercises
4. Sets achievable milestones
5. Estimates time commitment

Format:
## Learning Path: [Topic]

### Current Level Assessment
[Brief assessment]

### Recommended Resources (in order):
1. [Resource Type]: [Title] - [Description]

### Practice Schedule:
- Week 1: [Focus area and exercises]

### Success Metrics:
- [Metric 1]
- [Metric 2]

### Estimated Completion: [Time estimate]

Make it practical and achievable!`
}

func BuildPathUserPrompt(currentTopic string, profile models.UserProfile, progressSummary string, availableResources []string) string {
	var b strings.Builder
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Current Topic: %s\n", currentTopic)
	fmt.Fprintf(&b, "- Knowledge Level: %s\n", profile.KnowledgeLevel)
	fmt.Fprintf(&b, "- Learning Style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(profile.Interests, ", "))
	fmt.Fprintf(&b, "- Progress: %s\n\n", progressSummary)
	fmt.Fprintf(&b, "Available Resources:\n%s", strings.Join(availableResources, "\n"))
	return b.String()
}
