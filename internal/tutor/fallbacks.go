package tutor

import "fmt"

// Deterministic substitute text for failed generation calls. Error details
// are clipped to their first 100 characters so provider stack traces never
// reach the user.

const errorDetailLimit = 100

func fallbackExplanation(query string, err error) string {
	return fmt.Sprintf(`## Explanation for: %s

Sorry, I encountered an error while generating the explanation.

**Key Points:**
- Please try again with a more specific query
- Make sure your API keys are properly configured
- You can also try rephrasing your question

**Example Query Format:**
- "Explain neural networks for beginners"
- "What is Python programming?"
- "How do quantum computers work?"

Error details: %s...
`, query, truncate(err.Error(), errorDetailLimit))
}

func fallbackQuestions(topic string, err error) string {
	return fmt.Sprintf(`## Practice Questions for: %s

Q1: What are the key concepts you learned about %s?

Answer: [Your answer here]
Explanation: This question helps you recall the main points from the explanation.

Q2: Can you provide a real-world example of %s?

Answer: [Your example here]
Explanation: Applying concepts to real-world scenarios improves understanding.

Q3: What would you like to learn next about %s?

Answer: [Your thoughts here]
Explanation: Identifying next steps helps guide your learning journey.

Note: Error occurred while generating questions: %s
`, topic, topic, topic, topic, truncate(err.Error(), errorDetailLimit))
}

func fallbackLearningPath(topic string, err error) string {
	return fmt.Sprintf(`## Learning Path: %s

### Current Level Assessment
Starting your learning journey on this topic.

### Recommended Learning Approach:
1. **Start with Basics**: Understand fundamental concepts
2. **Practice Regularly**: Apply what you learn through exercises
3. **Build Projects**: Create small projects to reinforce learning
4. **Review and Reflect**: Regularly review what you've learned

### Week-by-Week Plan:
- Week 1: Learn basic concepts and terminology
- Week 2: Practice with simple examples
- Week 3: Build a small project or complete exercises
- Week 4: Review and explore advanced topics

### Success Metrics:
- Complete basic understanding of concepts
- Successfully complete practice exercises
- Build at least one small project

### Estimated Completion: 4 weeks

Note: Error occurred while generating detailed path: %s
`, topic, truncate(err.Error(), errorDetailLimit))
}

// truncate limits s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
