package fixtures

import "exam-service/internal/models"

// Tests returns the built-in test definitions covering the supported exam
// patterns. Durations are minutes.
func Tests() []models.TestDefinition {
	return []models.TestDefinition{
		{
			ID:              "jee-mock-1",
			Name:            "JEE Main Full Mock Test - 1",
			Type:            models.TestJEE,
			Description:     "Complete JEE Main pattern mock test with Physics, Chemistry, and Mathematics sections. Duration: 3 hours. Total Questions: 90.",
			DurationMinutes: 180,
			TotalMarks:      360,
			TotalQuestions:  90,
			Sections: []models.TestSection{
				{ID: "jee-sec-1", Name: "Physics", Subject: "Physics", QuestionCount: 30, Marks: 120, TimeLimitMinutes: 60},
				{ID: "jee-sec-2", Name: "Chemistry", Subject: "Chemistry", QuestionCount: 30, Marks: 120, TimeLimitMinutes: 60},
				{ID: "jee-sec-3", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 30, Marks: 120, TimeLimitMinutes: 60},
			},
			Instructions: []string{
				"The test contains 3 sections: Physics, Chemistry, and Mathematics.",
				"Each section has 30 questions.",
				"Each question carries 4 marks for correct answer.",
				"There is negative marking of 1 mark for each wrong answer.",
				"No marks will be deducted for unattempted questions.",
				"You can navigate between sections and questions freely.",
				"Use the question palette to track your progress.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 60,
			CreatedAt:         "2024-01-15",
			IsActive:          true,
		},
		{
			ID:              "eamcet-mock-1",
			Name:            "AP EAMCET Full Mock Test - 1",
			Type:            models.TestEAMCET,
			Description:     "AP EAMCET pattern mock test with 160 questions. Duration: 3 hours. No negative marking.",
			DurationMinutes: 180,
			TotalMarks:      160,
			TotalQuestions:  160,
			Sections: []models.TestSection{
				{ID: "eamcet-sec-1", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 80, Marks: 80, TimeLimitMinutes: 90},
				{ID: "eamcet-sec-2", Name: "Physics", Subject: "Physics", QuestionCount: 40, Marks: 40, TimeLimitMinutes: 45},
				{ID: "eamcet-sec-3", Name: "Chemistry", Subject: "Chemistry", QuestionCount: 40, Marks: 40, TimeLimitMinutes: 45},
			},
			Instructions: []string{
				"The test contains 3 sections: Mathematics (80 questions), Physics (40 questions), and Chemistry (40 questions).",
				"Each question carries 1 mark.",
				"There is NO negative marking for wrong answers.",
				"You can navigate between sections and questions freely.",
				"The question palette shows: Not Visited (Grey), Unanswered (Red), Answered (Green), Marked for Review (Blue).",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   false,
			PassingPercentage: 50,
			CreatedAt:         "2024-01-20",
			IsActive:          true,
		},
		{
			ID:              "neet-mock-1",
			Name:            "NEET Full Mock Test - 1",
			Type:            models.TestNEET,
			Description:     "NEET pattern mock test with Physics, Chemistry, and Biology sections. Duration: 3 hours 20 minutes.",
			DurationMinutes: 200,
			TotalMarks:      720,
			TotalQuestions:  180,
			Sections: []models.TestSection{
				{ID: "neet-sec-1", Name: "Physics", Subject: "Physics", QuestionCount: 45, Marks: 180, TimeLimitMinutes: 50},
				{ID: "neet-sec-2", Name: "Chemistry", Subject: "Chemistry", QuestionCount: 45, Marks: 180, TimeLimitMinutes: 50},
				{ID: "neet-sec-3", Name: "Botany", Subject: "Biology", QuestionCount: 45, Marks: 180, TimeLimitMinutes: 40},
				{ID: "neet-sec-4", Name: "Zoology", Subject: "Biology", QuestionCount: 45, Marks: 180, TimeLimitMinutes: 40},
			},
			Instructions: []string{
				"The test contains 4 sections: Physics, Chemistry, Botany, and Zoology.",
				"Each section has 45 questions.",
				"Each question carries 4 marks for correct answer.",
				"There is negative marking of 1 mark for each wrong answer.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 50,
			CreatedAt:         "2024-01-25",
			IsActive:          true,
		},
		{
			ID:              "ssc-cgl-mock-1",
			Name:            "SSC CGL Tier-I Mock Test - 1",
			Type:            models.TestSSC,
			Description:     "SSC CGL Tier-I pattern mock test with General Intelligence, General Awareness, Quantitative Aptitude, and English.",
			DurationMinutes: 60,
			TotalMarks:      200,
			TotalQuestions:  100,
			Sections: []models.TestSection{
				{ID: "ssc-sec-1", Name: "General Intelligence", Subject: "Reasoning", QuestionCount: 25, Marks: 50, TimeLimitMinutes: 15},
				{ID: "ssc-sec-2", Name: "General Awareness", Subject: "General Awareness", QuestionCount: 25, Marks: 50, TimeLimitMinutes: 15},
				{ID: "ssc-sec-3", Name: "Quantitative Aptitude", Subject: "Quantitative Aptitude", QuestionCount: 25, Marks: 50, TimeLimitMinutes: 15},
				{ID: "ssc-sec-4", Name: "English Comprehension", Subject: "English", QuestionCount: 25, Marks: 50, TimeLimitMinutes: 15},
			},
			Instructions: []string{
				"The test contains 4 sections with 25 questions each.",
				"Each question carries 2 marks.",
				"There is negative marking of 0.5 marks for each wrong answer.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 35,
			CreatedAt:         "2024-02-01",
			IsActive:          true,
		},
		{
			ID:              "banking-po-mock-1",
			Name:            "IBPS PO Prelims Mock Test - 1",
			Type:            models.TestBanking,
			Description:     "IBPS PO Prelims pattern mock test with English, Quantitative Aptitude, and Reasoning.",
			DurationMinutes: 60,
			TotalMarks:      100,
			TotalQuestions:  100,
			Sections: []models.TestSection{
				{ID: "bank-sec-1", Name: "English Language", Subject: "English", QuestionCount: 30, Marks: 30, TimeLimitMinutes: 20},
				{ID: "bank-sec-2", Name: "Quantitative Aptitude", Subject: "Quantitative Aptitude", QuestionCount: 35, Marks: 35, TimeLimitMinutes: 20},
				{ID: "bank-sec-3", Name: "Reasoning Ability", Subject: "Reasoning", QuestionCount: 35, Marks: 35, TimeLimitMinutes: 20},
			},
			Instructions: []string{
				"The test contains 3 sections: English (30), Quant (35), and Reasoning (35).",
				"Each question carries 1 mark.",
				"There is negative marking of 0.25 marks for each wrong answer.",
				"Sectional timing is applicable.",
				"You cannot navigate between sections until time expires for the current section.",
			},
			NegativeMarking:   true,
			PassingPercentage: 40,
			CreatedAt:         "2024-02-05",
			IsActive:          true,
		},
		{
			ID:              "jee-math-practice",
			Name:            "JEE Mathematics Practice Test",
			Type:            models.TestJEE,
			Description:     "Focused practice test for JEE Mathematics covering Calculus, Algebra, and Coordinate Geometry.",
			DurationMinutes: 60,
			TotalMarks:      100,
			TotalQuestions:  25,
			Sections: []models.TestSection{
				{ID: "math-prac-1", Name: "Mathematics", Subject: "Mathematics", QuestionCount: 25, Marks: 100, TimeLimitMinutes: 60},
			},
			Instructions: []string{
				"This is a Mathematics-only practice test.",
				"Each question carries 4 marks.",
				"There is negative marking of 1 mark for wrong answers.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 50,
			CreatedAt:         "2024-02-10",
			IsActive:          true,
		},
		{
			ID:              "jee-physics-practice",
			Name:            "JEE Physics Practice Test - Mechanics",
			Type:            models.TestJEE,
			Description:     "Focused practice test for JEE Physics covering Mechanics, Kinematics, and Dynamics.",
			DurationMinutes: 60,
			TotalMarks:      100,
			TotalQuestions:  25,
			Sections: []models.TestSection{
				{ID: "phy-prac-1", Name: "Physics", Subject: "Physics", QuestionCount: 25, Marks: 100, TimeLimitMinutes: 60},
			},
			Instructions: []string{
				"This is a Physics-only practice test.",
				"Each question carries 4 marks.",
				"There is negative marking of 1 mark for wrong answers.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 50,
			CreatedAt:         "2024-02-12",
			IsActive:          true,
		},
		{
			ID:              "ssc-quant-practice",
			Name:            "SSC Quantitative Aptitude Practice",
			Type:            models.TestSSC,
			Description:     "Practice test for SSC Quantitative Aptitude with Arithmetic, Algebra, and Geometry questions.",
			DurationMinutes: 45,
			TotalMarks:      50,
			TotalQuestions:  25,
			Sections: []models.TestSection{
				{ID: "ssc-quant-1", Name: "Quantitative Aptitude", Subject: "Quantitative Aptitude", QuestionCount: 25, Marks: 50, TimeLimitMinutes: 45},
			},
			Instructions: []string{
				"This is a Quant-only practice test.",
				"Each question carries 2 marks.",
				"There is negative marking of 0.5 marks for wrong answers.",
				"The test will be automatically submitted when time expires.",
			},
			NegativeMarking:   true,
			PassingPercentage: 40,
			CreatedAt:         "2024-02-15",
			IsActive:          true,
		},
	}
}

// Configs returns the per-test generation configs. Tests without one fall
// back to per-section subject draws.
func Configs() []models.TestConfig {
	return []models.TestConfig{
		{
			ID:     "config-jee-1",
			TestID: "jee-mock-1",
			QuestionDistribution: []models.DistributionRule{
				{Subject: "Physics", Topic: "Mechanics", EasyCount: 5, MediumCount: 10, HardCount: 5},
				{Subject: "Physics", Topic: "Electrostatics", EasyCount: 3, MediumCount: 5, HardCount: 2},
				{Subject: "Chemistry", Topic: "Organic Chemistry", EasyCount: 5, MediumCount: 10, HardCount: 5},
				{Subject: "Chemistry", Topic: "Physical Chemistry", EasyCount: 3, MediumCount: 5, HardCount: 2},
				{Subject: "Mathematics", Topic: "Calculus", EasyCount: 5, MediumCount: 10, HardCount: 5},
				{Subject: "Mathematics", Topic: "Algebra", EasyCount: 3, MediumCount: 5, HardCount: 2},
			},
			RandomizeQuestions:    true,
			RandomizeOptions:      true,
			ShowResultImmediately: false,
			AllowReview:           true,
			MaxAttempts:           3,
		},
		{
			ID:     "config-eamcet-1",
			TestID: "eamcet-mock-1",
			QuestionDistribution: []models.DistributionRule{
				{Subject: "Mathematics", Topic: "Trigonometry", EasyCount: 15, MediumCount: 20, HardCount: 5},
				{Subject: "Mathematics", Topic: "Calculus", EasyCount: 10, MediumCount: 15, HardCount: 5},
				{Subject: "Physics", Topic: "Mechanics", EasyCount: 8, MediumCount: 10, HardCount: 2},
				{Subject: "Physics", Topic: "Electrostatics", EasyCount: 8, MediumCount: 10, HardCount: 2},
				{Subject: "Chemistry", Topic: "Organic Chemistry", EasyCount: 8, MediumCount: 10, HardCount: 2},
				{Subject: "Chemistry", Topic: "Inorganic Chemistry", EasyCount: 8, MediumCount: 10, HardCount: 2},
			},
			RandomizeQuestions:    true,
			RandomizeOptions:      true,
			ShowResultImmediately: true,
			AllowReview:           true,
			MaxAttempts:           5,
		},
	}
}
