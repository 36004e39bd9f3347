package materials

import (
	"fmt"
	"log"

	"github.com/learnmate/backend/internal/models"
)

// The catalog is considered unseeded below this many materials.
const seedThreshold = 3

// seedIfEmpty inserts the starter corpus so search works out of the box.
func (s *Service) seedIfEmpty() error {
	count, err := s.store.Count()
	if err != nil {
		return err
	}
	if count >= seedThreshold {
		return nil
	}

	log.Printf("Material catalog has only %d materials, seeding starter corpus", count)
	for _, m := range starterMaterials() {
		if _, err := s.store.Insert(m); err != nil {
			return fmt.Errorf("seed material %q: %w", m.Topic, err)
		}
	}
	return nil
}

func starterMaterials() []models.Material {
	return []models.Material{
		{
			Topic:       "Python Programming",
			Subtopic:    strPtr("Variables and Data Types"),
			Difficulty:  "beginner",
			ContentType: "explanation",
			Tags:        []string{"python", "programming", "basics"},
			Content: `Variables in Python are like containers that store data values. You don't need to declare variable types explicitly - Python infers it automatically.

Basic data types:
1. Integers: Whole numbers (e.g., 5, -3, 42)
2. Floats: Decimal numbers (e.g., 3.14, -0.001)
3. Strings: Text data (e.g., "Hello", 'Python')
4. Booleans: True or False values
5. Lists: Ordered, mutable collections [1, 2, 3]
6. Dictionaries: Key-value pairs {'name': 'John', 'age': 25}

Example:
x = 10  # integer
name = "Alice"  # string
is_active = True  # boolean`,
		},
		{
			Topic:       "Machine Learning",
			Subtopic:    strPtr("Introduction to Neural Networks"),
			Difficulty:  "intermediate",
			ContentType: "explanation",
			Tags:        []string{"ml", "ai", "neural-networks"},
			Content: `Neural networks are computing systems inspired by biological neural networks. They consist of layers of interconnected nodes (neurons).

Key components:
1. Input Layer: Receives the input data
2. Hidden Layers: Process the data through weighted connections
3. Output Layer: Produces the final prediction

Activation functions (like ReLU or Sigmoid) introduce non-linearity, allowing the network to learn complex patterns.

Training involves:
- Forward pass: Calculate predictions
- Loss calculation: Compare predictions with actual values
- Backward pass: Update weights using gradient descent`,
		},
		{
			Topic:       "Quantum Computing",
			Subtopic:    strPtr("Qubits and Superposition"),
			Difficulty:  "advanced",
			ContentType: "explanation",
			Tags:        []string{"quantum", "physics", "computing"},
			Content: `Unlike classical bits that are either 0 or 1, qubits can exist in superposition - both 0 and 1 simultaneously.

A qubit state is represented as: |ψ⟩ = α|0⟩ + β|1⟩
where α and β are complex numbers, and |α|² + |β|² = 1

Key concepts:
1. Superposition: Qubit can be in multiple states at once
2. Entanglement: Qubits can be linked, affecting each other instantly
3. Measurement: Collapses superposition to 0 or 1

Example applications:
- Quantum cryptography
- Drug discovery
- Optimization problems`,
		},
		{
			Topic:       "Web Development",
			Subtopic:    strPtr("HTML Basics"),
			Difficulty:  "beginner",
			ContentType: "tutorial",
			Tags:        []string{"web", "html", "frontend"},
			Content: `HTML (HyperText Markup Language) is the standard markup language for creating web pages.

Basic structure:
<!DOCTYPE html>
<html>
<head>
    <title>Page Title</title>
</head>
<body>
    <h1>This is a Heading</h1>
    <p>This is a paragraph.</p>
</body>
</html>

Common elements:
- Headings: <h1> to <h6>
- Paragraphs: <p>
- Links: <a href="url">link text</a>
- Images: <img src="image.jpg" alt="description">`,
		},
		{
			Topic:       "Data Science",
			Subtopic:    strPtr("Pandas Introduction"),
			Difficulty:  "intermediate",
			ContentType: "tutorial",
			Tags:        []string{"data-science", "python", "pandas"},
			Content: `Pandas is a Python library for data manipulation and analysis.

Key data structures:
1. Series: One-dimensional labeled array
2. DataFrame: Two-dimensional labeled data structure (like a spreadsheet)

Basic operations:
import pandas as pd

# Create a DataFrame
data = {'Name': ['Alice', 'Bob', 'Charlie'],
        'Age': [25, 30, 35],
        'City': ['NYC', 'LA', 'Chicago']}
df = pd.DataFrame(data)

# Filter data
adults = df[df['Age'] > 30]

# Group by
city_counts = df.groupby('City').size()`,
		},
	}
}

func strPtr(s string) *string { return &s }
