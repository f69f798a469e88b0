package fixtures

import "exam-service/internal/models"

// Questions returns the built-in question bank. IDs are stable so attempts
// and explanations stay resolvable across restarts.
func Questions() []models.Question {
	return []models.Question{
		// Mathematics
		{
			ID:            "m1",
			Prompt:        "Evaluate the expression: √(1+cos θ)/(1-cos θ) = ?",
			Options:       []string{"cosec θ - cot θ", "cosec θ + cot θ", "tan θ - cot θ", "None of these"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Using half-angle formulas, √(1+cos θ)/(1-cos θ) = √(2cos²(θ/2))/(2sin²(θ/2)) = cot(θ/2) = cosec θ + cot θ",
			Subject:       "Mathematics",
			Topic:         "Trigonometry",
			SubTopic:      "Trigonometric Identities",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "trigonometry"},
		},
		{
			ID:            "m2",
			Prompt:        "If sin θ + cos θ = 1/5, then find the value of sin 2θ.",
			Options:       []string{"24/25", "-24/25", "12/25", "-12/25"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Squaring both sides: (sin θ + cos θ)² = 1/25 → 1 + sin 2θ = 1/25 → sin 2θ = -24/25",
			Subject:       "Mathematics",
			Topic:         "Trigonometry",
			SubTopic:      "Multiple Angles",
			Difficulty:    models.DifficultyHard,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "trigonometry"},
		},
		{
			ID:            "m3",
			Prompt:        "Find the derivative of f(x) = x³ - 3x² + 2x - 1 at x = 2.",
			Options:       []string{"2", "4", "6", "8"},
			Correct:       models.SingleChoice(0),
			Explanation:   "f'(x) = 3x² - 6x + 2. At x = 2: f'(2) = 3(4) - 6(2) + 2 = 2",
			Subject:       "Mathematics",
			Topic:         "Calculus",
			SubTopic:      "Differentiation",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "calculus"},
		},
		{
			ID:            "m4",
			Prompt:        "∫(0 to π/2) sin²x dx = ?",
			Options:       []string{"π/4", "π/2", "π", "2π"},
			Correct:       models.SingleChoice(0),
			Explanation:   "∫sin²x dx = (x/2) - (sin 2x)/4. Evaluating from 0 to π/2 gives π/4",
			Subject:       "Mathematics",
			Topic:         "Calculus",
			SubTopic:      "Integration",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "integration"},
		},
		{
			ID:            "m5",
			Prompt:        "The sum of first n terms of an AP is 3n² + 5n. Find the common difference.",
			Options:       []string{"3", "5", "6", "8"},
			Correct:       models.SingleChoice(2),
			Explanation:   "S₁ = a₁ = 8, S₂ = 22, so a₂ = 14. Common difference d = a₂ - a₁ = 6",
			Subject:       "Mathematics",
			Topic:         "Algebra",
			SubTopic:      "Arithmetic Progression",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"eamcet", "jee", "ap"},
		},
		{
			ID:            "m6",
			Prompt:        "If |z - 2i| = |z + 2i|, then the locus of z is:",
			Options:       []string{"Real axis", "Imaginary axis", "Circle", "Line y = x"},
			Correct:       models.SingleChoice(0),
			Explanation:   "z is equidistant from 2i and -2i, which is the real axis",
			Subject:       "Mathematics",
			Topic:         "Complex Numbers",
			SubTopic:      "Locus",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "complex"},
		},
		{
			ID:            "m7",
			Prompt:        "The probability of getting a sum of 7 when two dice are thrown is:",
			Options:       []string{"1/6", "1/9", "1/12", "5/36"},
			Correct:       models.SingleChoice(0),
			Explanation:   "Favorable outcomes: (1,6), (2,5), (3,4), (4,3), (5,2), (6,1) = 6. Total = 36. P = 6/36 = 1/6",
			Subject:       "Mathematics",
			Topic:         "Probability",
			SubTopic:      "Basic Probability",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"eamcet", "jee", "probability"},
		},
		{
			ID:            "m8",
			Prompt:        "Find the equation of the line passing through (2, 3) and perpendicular to 3x + 4y = 7.",
			Options:       []string{"4x - 3y = -1", "4x - 3y = 1", "3x - 4y = -6", "3x + 4y = 18"},
			Correct:       models.SingleChoice(0),
			Explanation:   "Slope of given line = -3/4. Perpendicular slope = 4/3. Equation: y - 3 = (4/3)(x - 2) → 4x - 3y = -1",
			Subject:       "Mathematics",
			Topic:         "Coordinate Geometry",
			SubTopic:      "Straight Lines",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"eamcet", "coordinate"},
		},

		// Physics
		{
			ID:            "p1",
			Prompt:        "A particle moves with velocity v = 3t² - 4t + 5 m/s. Find its acceleration at t = 2s.",
			Options:       []string{"4 m/s²", "8 m/s²", "12 m/s²", "16 m/s²"},
			Correct:       models.SingleChoice(1),
			Explanation:   "a = dv/dt = 6t - 4. At t = 2: a = 6(2) - 4 = 8 m/s²",
			Subject:       "Physics",
			Topic:         "Mechanics",
			SubTopic:      "Kinematics",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "kinematics"},
		},
		{
			ID:            "p2",
			Prompt:        "Two charges q₁ and q₂ are placed at a distance r. The force between them is F. If distance is doubled, the new force is:",
			Options:       []string{"F/2", "F/4", "2F", "4F"},
			Correct:       models.SingleChoice(1),
			Explanation:   "By Coulomb's law, F ∝ 1/r². If r becomes 2r, F becomes F/4",
			Subject:       "Physics",
			Topic:         "Electrostatics",
			SubTopic:      "Coulomb Law",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "electrostatics"},
		},
		{
			ID:            "p3",
			Prompt:        "In a Young's double slit experiment, the fringe width is β. If the wavelength is doubled and slit separation is halved, the new fringe width is:",
			Options:       []string{"β/4", "β/2", "2β", "4β"},
			Correct:       models.SingleChoice(3),
			Explanation:   "Fringe width β = λD/d. New β' = (2λ)D/(d/2) = 4λD/d = 4β",
			Subject:       "Physics",
			Topic:         "Optics",
			SubTopic:      "Interference",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "optics"},
		},
		{
			ID:            "p4",
			Prompt:        "The de Broglie wavelength of an electron accelerated through 100V is approximately:",
			Options:       []string{"0.12 nm", "0.12 Å", "1.2 nm", "12 nm"},
			Correct:       models.SingleChoice(0),
			Explanation:   "λ = h/√(2meV) ≈ 1.227/√V nm = 1.227/10 ≈ 0.12 nm",
			Subject:       "Physics",
			Topic:         "Modern Physics",
			SubTopic:      "Quantum Mechanics",
			Difficulty:    models.DifficultyHard,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "modern-physics"},
		},
		{
			ID:            "p5",
			Prompt:        "A transformer has 100 turns in primary and 500 turns in secondary. If primary voltage is 220V, the secondary voltage is:",
			Options:       []string{"44V", "110V", "440V", "1100V"},
			Correct:       models.SingleChoice(3),
			Explanation:   "V₂/V₁ = N₂/N₁ → V₂ = 220 × (500/100) = 1100V",
			Subject:       "Physics",
			Topic:         "Electromagnetism",
			SubTopic:      "Transformers",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"eamcet", "jee", "electromagnetism"},
		},
		{
			ID:            "p6",
			Prompt:        "The time period of a simple pendulum on Earth is 2s. On a planet with g' = g/4, the time period will be:",
			Options:       []string{"1s", "2s", "4s", "8s"},
			Correct:       models.SingleChoice(2),
			Explanation:   "T ∝ 1/√g. If g becomes g/4, T doubles to 4s",
			Subject:       "Physics",
			Topic:         "Oscillations",
			SubTopic:      "Simple Pendulum",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "shm"},
		},

		// Chemistry
		{
			ID:            "c1",
			Prompt:        "The IUPAC name of CH₃-CH₂-CH(CH₃)-CH₂-CH₃ is:",
			Options:       []string{"2-methylpentane", "3-methylpentane", "2-ethylbutane", "isohexane"},
			Correct:       models.SingleChoice(0),
			Explanation:   "Longest chain has 5 carbons with methyl at position 2: 2-methylpentane",
			Subject:       "Chemistry",
			Topic:         "Organic Chemistry",
			SubTopic:      "IUPAC Nomenclature",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "organic"},
		},
		{
			ID:            "c2",
			Prompt:        "The pH of 10⁻⁸ M HCl solution at 25°C is approximately:",
			Options:       []string{"6", "6.98", "7", "8"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Total [H⁺] = 10⁻⁸ + 10⁻⁷ = 1.1 × 10⁻⁷. pH = -log(1.1 × 10⁻⁷) ≈ 6.98",
			Subject:       "Chemistry",
			Topic:         "Physical Chemistry",
			SubTopic:      "pH Calculations",
			Difficulty:    models.DifficultyHard,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "physical"},
		},
		{
			ID:            "c3",
			Prompt:        "The hybridization of carbon in ethene (C₂H₄) is:",
			Options:       []string{"sp", "sp²", "sp³", "dsp²"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Each carbon forms 3 σ bonds and 1 π bond, so sp² hybridization",
			Subject:       "Chemistry",
			Topic:         "Organic Chemistry",
			SubTopic:      "Hybridization",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "hybridization"},
		},
		{
			ID:            "c4",
			Prompt:        "Which of the following has the highest boiling point?",
			Options:       []string{"HF", "HCl", "HBr", "HI"},
			Correct:       models.SingleChoice(0),
			Explanation:   "HF has hydrogen bonding, which is stronger than dipole-dipole interactions in the others",
			Subject:       "Chemistry",
			Topic:         "Physical Chemistry",
			SubTopic:      "Intermolecular Forces",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "bonding"},
		},
		{
			ID:            "c5",
			Prompt:        "The oxidation state of Cr in K₂Cr₂O₇ is:",
			Options:       []string{"+3", "+4", "+6", "+7"},
			Correct:       models.SingleChoice(2),
			Explanation:   "2(+1) + 2x + 7(-2) = 0 → x = +6",
			Subject:       "Chemistry",
			Topic:         "Inorganic Chemistry",
			SubTopic:      "Oxidation States",
			Difficulty:    models.DifficultyEasy,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "eamcet", "inorganic"},
		},
		{
			ID:            "c6",
			Prompt:        "The number of unpaired electrons in Fe²⁺ (Z=26) is:",
			Options:       []string{"2", "4", "6", "0"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Fe²⁺: [Ar] 3d⁶. By Hund's rule, there are 4 unpaired electrons",
			Subject:       "Chemistry",
			Topic:         "Inorganic Chemistry",
			SubTopic:      "Electronic Configuration",
			Difficulty:    models.DifficultyMedium,
			Marks:         4,
			NegativeMarks: 1,
			Type:          models.QuestionSingle,
			Tags:          []string{"jee", "inorganic"},
		},

		// SSC and Banking
		{
			ID:            "s1",
			Prompt:        "Who is known as the \"Father of Indian Constitution\"?",
			Options:       []string{"Mahatma Gandhi", "B.R. Ambedkar", "Jawaharlal Nehru", "Sardar Patel"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Dr. B.R. Ambedkar chaired the drafting committee of the Indian Constitution.",
			Subject:       "General Awareness",
			Topic:         "Indian Polity",
			SubTopic:      "Constitution",
			Difficulty:    models.DifficultyEasy,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "polity"},
		},
		{
			ID:            "s2",
			Prompt:        "If A can complete a work in 10 days and B can complete the same work in 15 days, how many days will they take working together?",
			Options:       []string{"5 days", "6 days", "7.5 days", "8 days"},
			Correct:       models.SingleChoice(1),
			Explanation:   "A's 1 day work = 1/10, B's = 1/15. Together = 1/6, so 6 days.",
			Subject:       "Quantitative Aptitude",
			Topic:         "Time and Work",
			SubTopic:      "Work Efficiency",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "quant"},
		},
		{
			ID:            "s3",
			Prompt:        "The ratio of ages of A and B is 3:5. After 10 years, the ratio becomes 5:7. Find the present age of A.",
			Options:       []string{"15 years", "20 years", "25 years", "30 years"},
			Correct:       models.SingleChoice(0),
			Explanation:   "(3x+10)/(5x+10) = 5/7 → x = 5. A's age = 15 years.",
			Subject:       "Quantitative Aptitude",
			Topic:         "Problems on Ages",
			SubTopic:      "Ratio Based",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "ages"},
		},
		{
			ID:            "s4",
			Prompt:        "Which river is known as the \"Sorrow of Bengal\"?",
			Options:       []string{"Ganga", "Brahmaputra", "Damodar", "Hooghly"},
			Correct:       models.SingleChoice(2),
			Explanation:   "Damodar River is called the Sorrow of Bengal for its devastating floods.",
			Subject:       "General Awareness",
			Topic:         "Indian Geography",
			SubTopic:      "Rivers",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "geography"},
		},
		{
			ID:            "s5",
			Prompt:        "Find the compound interest on ₹8000 at 10% per annum for 2 years.",
			Options:       []string{"₹1520", "₹1600", "₹1680", "₹1760"},
			Correct:       models.SingleChoice(2),
			Explanation:   "CI = P[(1 + r/100)ⁿ - 1] = 8000 × 0.21 = ₹1680",
			Subject:       "Quantitative Aptitude",
			Topic:         "Compound Interest",
			SubTopic:      "CI Calculations",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "ci"},
		},
		{
			ID:            "s6",
			Prompt:        "The passage of the Rowlatt Act in 1919 led to which movement?",
			Options:       []string{"Non-Cooperation Movement", "Civil Disobedience Movement", "Quit India Movement", "Jallianwala Bagh Massacre"},
			Correct:       models.SingleChoice(3),
			Explanation:   "Protests against the Rowlatt Act culminated in the Jallianwala Bagh Massacre on April 13, 1919.",
			Subject:       "General Awareness",
			Topic:         "Indian History",
			SubTopic:      "Freedom Struggle",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "history"},
		},
		{
			ID:            "s7",
			Prompt:        "A train 150m long crosses a pole in 15 seconds. Find its speed in km/h.",
			Options:       []string{"30 km/h", "36 km/h", "45 km/h", "54 km/h"},
			Correct:       models.SingleChoice(1),
			Explanation:   "Speed = 150/15 = 10 m/s = 36 km/h",
			Subject:       "Quantitative Aptitude",
			Topic:         "Time and Distance",
			SubTopic:      "Trains",
			Difficulty:    models.DifficultyEasy,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "trains"},
		},
		{
			ID:            "s8",
			Prompt:        "Which is the largest gland in the human body?",
			Options:       []string{"Pancreas", "Liver", "Thyroid", "Adrenal"},
			Correct:       models.SingleChoice(1),
			Explanation:   "The liver is the largest gland in the human body, weighing about 1.5 kg.",
			Subject:       "General Awareness",
			Topic:         "Biology",
			SubTopic:      "Human Body",
			Difficulty:    models.DifficultyEasy,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "biology"},
		},
		{
			ID:            "s9",
			Prompt:        "If 20% of a = b, then b% of 20 is the same as:",
			Options:       []string{"4% of a", "5% of a", "20% of a", "None of these"},
			Correct:       models.SingleChoice(0),
			Explanation:   "b = 0.2a. b% of 20 = (0.2a/100) × 20 = 0.04a = 4% of a",
			Subject:       "Quantitative Aptitude",
			Topic:         "Percentage",
			SubTopic:      "Percentage Calculations",
			Difficulty:    models.DifficultyMedium,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "percentage"},
		},
		{
			ID:            "s10",
			Prompt:        "The headquarters of the World Bank is located in:",
			Options:       []string{"Geneva", "New York", "Washington D.C.", "London"},
			Correct:       models.SingleChoice(2),
			Explanation:   "The World Bank headquarters is in Washington D.C., United States.",
			Subject:       "General Awareness",
			Topic:         "World Organizations",
			SubTopic:      "Banking Institutions",
			Difficulty:    models.DifficultyEasy,
			Marks:         2,
			NegativeMarks: 0.5,
			Type:          models.QuestionSingle,
			Tags:          []string{"ssc", "banking", "world-bank"},
		},
	}
}
