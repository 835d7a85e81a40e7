package resume

// defaultDocument 是站点首次访问时使用的内置简历。
// 任何加载失败路径最终都会回落到这份数据。
var defaultDocument = Document{
	Profile: Profile{
		Name:        "Akashdeep Tomar",
		Title:       "FinCrime Analyst | Risk & Compliance Specialist",
		Email:       "adeep5955@gmail.com",
		Phone:       "9041552126",
		Location:    "Gurugram",
		Description: "Results-driven FinCrime Analyst with hands-on experience in AML investigations, risk assessment, KYC/KYB, and regulatory compliance. Skilled in analyzing customer profiles, conducting due diligence, and ensuring adherence to global financial regulations (FATF, FinCEN, RBI). Adept at reducing fraud risks, monitoring transactions, and escalating suspicious activity reports (SARs). Recognized as a Process Champion with experience in leading teams and improving operational efficiency.",
	},
	Stats: []Stat{
		{ID: "stat1", Value: "95%", Label: "Compliance Accuracy", Icon: IconGauge},
		{ID: "stat2", Value: "150+", Label: "Monthly Reviews", Icon: IconTarget},
		{ID: "stat3", Value: "30%", Label: "Efficiency Improvement", Icon: IconTool},
	},
	Experience: []Experience{
		{
			ID:       "exp1",
			Company:  "TaskUs India PVT LTD",
			Position: "FinCrime Analyst",
			Period:   "07/2023 - Present",
			Challenges: []Challenge{
				{
					ID:        "challenge1",
					Challenge: "High volume of false-positive alerts in transaction monitoring.",
					Result:    "Implemented advanced negative media screening and root-cause analysis techniques, reducing false-positive alerts by 30%.",
				},
				{
					ID:        "challenge2",
					Challenge: "Ensuring compliance with Fintech regulations.",
					Result:    "Conducted KYC/KYB reviews for 150+ high-risk customer profiles monthly, reducing fraud risks by 20%.",
				},
				{
					ID:        "challenge3",
					Challenge: "Meeting monthly production targets.",
					Result:    "Led a team of 4 analysts, achieving 95% compliance accuracy and exceeding monthly targets by 15%.",
				},
			},
		},
		{
			ID:       "exp2",
			Company:  "Genpact India",
			Position: "Process Associate (Dispute Investigation)",
			Period:   "10/2021 - 03/2023",
			Challenges: []Challenge{
				{
					ID:        "challenge4",
					Challenge: "High volume of unresolved chargeback disputes.",
					Result:    "Resolved 200+ complex chargeback disputes annually, recovering $500K+ in fraudulent transactions.",
				},
				{
					ID:        "challenge5",
					Challenge: "Inefficient dispute resolution process.",
					Result:    "Implemented root-cause analysis for 95% of cases, reducing turnaround time by 10 days.",
				},
			},
		},
		{
			ID:       "exp3",
			Company:  "Byjus",
			Position: "Business Development Associate (BDA)",
			Period:   "12/2019 - 08/2020",
			Challenges: []Challenge{
				{
					ID:        "challenge6",
					Challenge: "Low conversion rates in competitive market.",
					Result:    "Achieved 120% of monthly sales targets for 6 consecutive months, contributing to ₹1000K+ in revenue.",
				},
			},
		},
		{
			ID:       "exp4",
			Company:  "Teleperformance India Mohali",
			Position: "Customer Support Advisor",
			Period:   "07/2018 - 12/2019",
			Challenges: []Challenge{
				{
					ID:        "challenge7",
					Challenge: "High volume of customer complaints.",
					Result:    "Improved customer satisfaction scores by 25% and reduced complaint escalation rates by 15%.",
				},
			},
		},
	},
	Education: []Education{
		{ID: "edu1", Degree: "B.Tech", Institution: "Chandigarh Group Of Colleges, Mohali", Period: "08/2014 - 07/2018"},
		{ID: "edu2", Degree: "12th", Institution: "P.S.E.B, Mohali", Period: "03/2013 - 03/2014"},
		{ID: "edu3", Degree: "10th", Institution: "P.S.E.B, Mohali", Period: "03/2011 - 03/2012"},
	},
	Skills: []Skill{
		{ID: "skill1", Name: "AML/CFT Compliance", Category: SkillCategoryCore},
		{ID: "skill2", Name: "KYC/KYB/CDD/EDD", Category: SkillCategoryCore},
		{ID: "skill3", Name: "Transaction Monitoring", Category: SkillCategoryCore},
		{ID: "skill4", Name: "Fraud Detection", Category: SkillCategoryCore},
		{ID: "skill5", Name: "Risk Assessment", Category: SkillCategoryCore},
		{ID: "skill6", Name: "Regulatory Reporting", Category: SkillCategoryCore},
		{ID: "skill7", Name: "PEP & Sanctions Screening", Category: SkillCategoryCore},
		{ID: "skill8", Name: "SAR/STR Filing", Category: SkillCategoryCore},
		{ID: "skill9", Name: "Actimize", Category: SkillCategoryTool},
		{ID: "skill10", Name: "SAS", Category: SkillCategoryTool},
		{ID: "skill11", Name: "World-Check", Category: SkillCategoryTool},
		{ID: "skill12", Name: "LexisNexis", Category: SkillCategoryTool},
		{ID: "skill13", Name: "Oracle", Category: SkillCategoryTool},
		{ID: "skill14", Name: "Confluence", Category: SkillCategoryTool},
		{ID: "skill15", Name: "MS Office", Category: SkillCategoryTool},
	},
	Languages: []string{"English", "Hindi", "Punjabi"},
}

// Default 返回内置简历的深拷贝，调用方可以放心修改。
func Default() *Document {
	return defaultDocument.Clone()
}
