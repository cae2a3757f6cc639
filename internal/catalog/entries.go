package catalog

import "github.com/magician360/opportunity-engine/internal/types"

// defaultEntries is the embedded Texas opportunity catalog. The
// businesses category carries the widest spread so repeated random
// matches stay diverse.
var defaultEntries = []types.Opportunity{
	// Jobs
	{
		ID:                "job-remote-developer-austin",
		Category:          types.CategoryJobs,
		Title:             "Remote Software Developer",
		Description:       "Remote software developer for Austin's growing tech hub, building products for startups and established semiconductor employers.",
		Region:            types.RegionAustin,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"programming", "software", "git"},
		YearsExperience:   2,
		SalaryRange:       "$85,000 - $130,000",
		TimeToStart:       types.StartWithinMonth,
		Remote:            true,
		NextSteps: []string{
			"Update your resume with recent technical projects",
			"Register with Workforce Solutions Capital Area",
			"Apply through Austin tech job boards and meetups",
		},
		ContactInfo: []string{"Workforce Solutions Capital Area: (512) 597-7100"},
		Programs: []types.Program{
			{Type: "Workforce", Name: "Skills Development Fund"},
			{Type: "DOL", Name: "Registered Apprenticeship"},
		},
	},
	{
		ID:                "job-healthcare-admin-houston",
		Category:          types.CategoryJobs,
		Title:             "Healthcare Administrator",
		Description:       "Healthcare administrator in Houston's medical center, coordinating operations across the world's largest medical complex.",
		Region:            types.RegionHouston,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"administration", "healthcare", "scheduling"},
		YearsExperience:   3,
		SalaryRange:       "$60,000 - $95,000",
		TimeToStart:       types.StartWithin3Months,
		DisabilityFriendly: true,
		NextSteps: []string{
			"Complete a healthcare administration certificate",
			"Contact Texas Medical Center member hospitals directly",
		},
		ContactInfo: []string{"Workforce Solutions Gulf Coast: (713) 688-6890"},
		Programs: []types.Program{
			{Type: "Workforce", Name: "Healthcare Sector Partnership"},
		},
	},
	{
		ID:                "job-wind-technician-panhandle",
		Category:          types.CategoryJobs,
		Title:             "Renewable Energy Technician",
		Description:       "Renewable energy technician for West Texas wind farms, servicing turbines across the Panhandle wind corridor.",
		Region:            types.RegionPanhandle,
		EducationRequired: types.EducationSomeCollege,
		Skills:            []string{"mechanical", "electrical", "safety"},
		YearsExperience:   0,
		SalaryRange:       "$48,000 - $70,000",
		TimeToStart:       types.StartWithinMonth,
		VeteranPreferred:  true,
		NextSteps: []string{
			"Enroll in a wind energy technology program at a community college",
			"Obtain OSHA safety certification",
		},
		ContactInfo: []string{"Workforce Solutions Panhandle: (806) 372-3381"},
		Programs: []types.Program{
			{Type: "Workforce", Name: "Rural Development"},
			{Type: "DOL", Name: "Veterans Employment and Training"},
		},
	},
	{
		ID:                "job-field-supervisor-permian",
		Category:          types.CategoryJobs,
		Title:             "Oil and Gas Field Supervisor",
		Description:       "Oil and gas field supervisor in the Permian Basin, leading drilling and completion crews.",
		Region:            types.RegionPermianBasin,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"oilfield", "leadership", "equipment operation"},
		YearsExperience:   5,
		SalaryRange:       "$75,000 - $110,000",
		TimeToStart:       types.StartImmediate,
		VeteranPreferred:  true,
		NextSteps: []string{
			"Document your rig and crew leadership experience",
			"Apply with Permian operators and service companies",
		},
		ContactInfo: []string{"Workforce Solutions Permian Basin: (432) 563-5239"},
		Programs: []types.Program{
			{Type: "Workforce", Name: "Energy-focused Training"},
		},
	},
	{
		ID:                "job-cybersecurity-dfw",
		Category:          types.CategoryJobs,
		Title:             "Cybersecurity Analyst",
		Description:       "Cybersecurity analyst for Dallas financial institutions, monitoring and defending banking infrastructure.",
		Region:            types.RegionDallasFortWorth,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"security", "networking", "analysis"},
		YearsExperience:   2,
		SalaryRange:       "$80,000 - $120,000",
		TimeToStart:       types.StartWithin3Months,
		DisabilityFriendly: true,
		Remote:            true,
		NextSteps: []string{
			"Earn a Security+ or equivalent certification",
			"Attend DFW security community meetups",
		},
		ContactInfo: []string{"Workforce Solutions for Tarrant County: (817) 413-4000"},
		Programs: []types.Program{
			{Type: "Workforce", Name: "Skills Development Fund"},
		},
	},

	// Businesses
	{
		ID:                "biz-food-truck-sanantonio",
		Category:          types.CategoryBusinesses,
		Title:             "Texas-Mexican Fusion Food Truck",
		Description:       "Mobile food truck featuring Texas-Mexican fusion cuisine for downtown lunch crowds and weekend festivals.",
		Region:            types.RegionSanAntonio,
		EducationRequired: types.EducationLessThanHighSchool,
		Skills:            []string{"cooking", "customer service"},
		YearsExperience:   1,
		StartupCost:       45000,
		SalaryRange:       "$40,000 - $80,000 net",
		TimeToStart:       types.StartWithin3Months,
		OpportunityZone:   true,
		NextSteps: []string{
			"Complete a food manager certification",
			"Apply for an SBA microloan through a local lender",
			"Secure a mobile vending permit from the city",
		},
		ContactInfo: []string{"San Antonio SBA District Office: (210) 403-5900"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
			{Type: "SBA", Name: "SCORE Mentorship"},
		},
	},
	{
		ID:                "biz-native-landscaping-austin",
		Category:          types.CategoryBusinesses,
		Title:             "Eco-Friendly Native Landscaping Service",
		Description:       "Eco-friendly landscaping service using native Texas plants that survive drought restrictions.",
		Region:            types.RegionAustin,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"landscaping", "horticulture"},
		YearsExperience:   0,
		StartupCost:       15000,
		SalaryRange:       "$35,000 - $70,000 net",
		TimeToStart:       types.StartWithinMonth,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Build a portfolio of native plant designs",
			"Register the business with the Texas Secretary of State",
		},
		ContactInfo: []string{"Central Texas SBDC: (512) 610-0996"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
		},
	},
	{
		ID:                "biz-coworking-dfw",
		Category:          types.CategoryBusinesses,
		Title:             "Suburban Co-Working Space",
		Description:       "Co-working space catering to remote workers in fast-growing Dallas-Fort Worth suburbs.",
		Region:            types.RegionDallasFortWorth,
		EducationRequired: types.EducationSomeCollege,
		Skills:            []string{"operations", "marketing", "hospitality"},
		YearsExperience:   2,
		StartupCost:       120000,
		SalaryRange:       "$50,000 - $120,000 net",
		TimeToStart:       types.StartPlanningStage,
		NextSteps: []string{
			"Survey demand in two or three target suburbs",
			"Prepare an SBA 7(a) loan package with an SBDC advisor",
		},
		ContactInfo: []string{"Dallas/Fort Worth SBA Branch Office: (817) 684-5500"},
		Programs: []types.Program{
			{Type: "SBA", Name: "7(a) Loan Program"},
			{Type: "SBA", Name: "SBDC Consulting"},
		},
	},
	{
		ID:                "biz-ev-charging-centraltx",
		Category:          types.CategoryBusinesses,
		Title:             "Highway EV Charging Network",
		Description:       "Electric vehicle charging station network along Texas highways between Austin and Waco.",
		Region:            types.RegionCentralTexas,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"electrical", "project management", "finance"},
		YearsExperience:   4,
		StartupCost:       350000,
		SalaryRange:       "varies with utilization",
		TimeToStart:       types.StartPlanningStage,
		OpportunityZone:   true,
		NextSteps: []string{
			"Identify highway corridor sites with utility capacity",
			"Apply for federal charging infrastructure grants",
		},
		ContactInfo: []string{"Central Texas SBDC: (254) 299-8141"},
		Programs: []types.Program{
			{Type: "SBA", Name: "7(a) Loan Program"},
			{Type: "State", Name: "Texas Enterprise Fund"},
		},
	},
	{
		ID:                "biz-wine-tourism-westtx",
		Category:          types.CategoryBusinesses,
		Title:             "Boutique Wine Tourism Company",
		Description:       "Boutique Texas wine tourism company running tasting tours through Hill Country and West Texas vineyards.",
		Region:            types.RegionWestTexas,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"hospitality", "driving", "event planning"},
		YearsExperience:   1,
		StartupCost:       60000,
		SalaryRange:       "$30,000 - $75,000 net",
		TimeToStart:       types.StartWithin3Months,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Obtain commercial passenger transport insurance",
			"Partner with three or more vineyards on tour packages",
		},
		ContactInfo: []string{"West Texas SBDC: (325) 942-2098"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
			{Type: "State", Name: "Rural Enterprise"},
		},
	},
	{
		ID:                "biz-disaster-prep-gulf",
		Category:          types.CategoryBusinesses,
		Title:             "Disaster Preparedness Consulting",
		Description:       "Disaster preparedness consulting for Gulf Coast businesses facing hurricane and flood exposure.",
		Region:            types.RegionGulfCoast,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"risk assessment", "consulting", "writing"},
		YearsExperience:   3,
		StartupCost:       8000,
		SalaryRange:       "$55,000 - $110,000 net",
		TimeToStart:       types.StartWithinMonth,
		VeteranPreferred:  true,
		Remote:            true,
		NextSteps: []string{
			"Draft continuity plan templates for small businesses",
			"Join the local chamber of commerce",
		},
		ContactInfo: []string{"Houston SBA District Office: (713) 773-6500"},
		Programs: []types.Program{
			{Type: "SBA", Name: "SCORE Mentorship"},
		},
	},
	{
		ID:                "biz-pecan-products-centraltx",
		Category:          types.CategoryBusinesses,
		Title:             "Specialty Pecan Products",
		Description:       "Specialty pecan products company using Texas-grown nuts for retail and mail-order gift lines.",
		Region:            types.RegionCentralTexas,
		EducationRequired: types.EducationLessThanHighSchool,
		Skills:            []string{"food production", "e-commerce"},
		YearsExperience:   0,
		StartupCost:       20000,
		SalaryRange:       "$25,000 - $60,000 net",
		TimeToStart:       types.StartWithin3Months,
		PartTimeAvailable: true,
		NextSteps: []string{
			"License a commercial kitchen or qualify under cottage food law",
			"Source pecans from Central Texas growers",
		},
		ContactInfo: []string{"Central Texas SBDC: (254) 299-8141"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
		},
	},
	{
		ID:                "biz-tech-repair-easttx",
		Category:          types.CategoryBusinesses,
		Title:             "Rural Tech Repair Service",
		Description:       "Tech repair service for rural East Texas communities underserved by big-box support desks.",
		Region:            types.RegionEastTexas,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"electronics repair", "customer service"},
		YearsExperience:   1,
		StartupCost:       12000,
		SalaryRange:       "$30,000 - $55,000 net",
		TimeToStart:       types.StartWithinMonth,
		DisabilityFriendly: true,
		NextSteps: []string{
			"Set up a mobile repair van with diagnostic tools",
			"Advertise through county newspapers and co-ops",
		},
		ContactInfo: []string{"East Texas SBDC: (903) 510-2975"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
			{Type: "State", Name: "Rural Development"},
		},
	},
	{
		ID:                "biz-home-cooling-houston",
		Category:          types.CategoryBusinesses,
		Title:             "Custom Home Cooling Solutions",
		Description:       "Custom home cooling solutions for the Texas heat, from shade retrofits to high-efficiency HVAC.",
		Region:            types.RegionHouston,
		EducationRequired: types.EducationSomeCollege,
		Skills:            []string{"hvac", "sales", "estimation"},
		YearsExperience:   3,
		StartupCost:       40000,
		SalaryRange:       "$50,000 - $100,000 net",
		TimeToStart:       types.StartWithin3Months,
		NextSteps: []string{
			"Obtain a Texas HVAC contractor license",
			"Line up equipment supplier accounts",
		},
		ContactInfo: []string{"Houston SBA District Office: (713) 773-6500"},
		Programs: []types.Program{
			{Type: "SBA", Name: "7(a) Loan Program"},
		},
	},
	{
		ID:                "biz-farm-delivery-austin",
		Category:          types.CategoryBusinesses,
		Title:             "Farm-to-City Delivery Service",
		Description:       "Local delivery service connecting Texas farmers to urban consumers with weekly produce routes.",
		Region:            types.RegionAustin,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"logistics", "driving", "marketing"},
		YearsExperience:   0,
		StartupCost:       25000,
		SalaryRange:       "$30,000 - $65,000 net",
		TimeToStart:       types.StartWithinMonth,
		OpportunityZone:   true,
		NextSteps: []string{
			"Recruit five or more farm suppliers within delivery range",
			"Build a simple subscription ordering site",
		},
		ContactInfo: []string{"Central Texas SBDC: (512) 610-0996"},
		Programs: []types.Program{
			{Type: "SBA", Name: "Microloan Program"},
		},
	},
	{
		ID:                "biz-bilingual-consulting-elpaso",
		Category:          types.CategoryBusinesses,
		Title:             "Bilingual Cross-Border Business Consulting",
		Description:       "Bilingual business consulting for Texas-Mexico commerce, guiding firms through USMCA trade rules.",
		Region:            types.RegionElPaso,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"spanish", "trade compliance", "consulting"},
		YearsExperience:   4,
		StartupCost:       5000,
		SalaryRange:       "$60,000 - $120,000 net",
		TimeToStart:       types.StartImmediate,
		Remote:            true,
		NextSteps: []string{
			"Register with the El Paso binational trade association",
			"Publish a USMCA compliance checklist as a lead magnet",
		},
		ContactInfo: []string{"El Paso SBA Branch Office: (915) 834-4600"},
		Programs: []types.Program{
			{Type: "State", Name: "USMCA Trade Support"},
			{Type: "SBA", Name: "SCORE Mentorship"},
		},
	},
	{
		ID:                "biz-solar-install-rgv",
		Category:          types.CategoryBusinesses,
		Title:             "Residential Solar Installation Company",
		Description:       "Solar installation company for residential properties in the sun-rich Rio Grande Valley.",
		Region:            types.RegionRioGrandeValley,
		EducationRequired: types.EducationSomeCollege,
		Skills:            []string{"electrical", "roofing", "sales"},
		YearsExperience:   2,
		StartupCost:       80000,
		SalaryRange:       "$45,000 - $95,000 net",
		TimeToStart:       types.StartWithin3Months,
		OpportunityZone:   true,
		VeteranPreferred:  true,
		NextSteps: []string{
			"Complete NABCEP installer certification",
			"Apply for an SBA 7(a) loan for inventory and equipment",
		},
		ContactInfo: []string{"Lower Rio Grande Valley SBDC: (956) 665-7535"},
		Programs: []types.Program{
			{Type: "SBA", Name: "7(a) Loan Program"},
			{Type: "State", Name: "Colonias Initiatives"},
		},
	},
	{
		ID:                "biz-bbq-supplies-dfw",
		Category:          types.CategoryBusinesses,
		Title:             "Barbecue Equipment and Supplies Retailer",
		Description:       "Barbecue equipment and supplies retailer serving competition teams and backyard pitmasters.",
		Region:            types.RegionDallasFortWorth,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"retail", "inventory", "barbecue"},
		YearsExperience:   1,
		StartupCost:       70000,
		SalaryRange:       "$40,000 - $85,000 net",
		TimeToStart:       types.StartWithin3Months,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Negotiate dealer agreements with smoker manufacturers",
			"Scout retail space near competition circuits",
		},
		ContactInfo: []string{"Dallas/Fort Worth SBA Branch Office: (817) 684-5500"},
		Programs: []types.Program{
			{Type: "SBA", Name: "7(a) Loan Program"},
		},
	},
	{
		ID:                "biz-water-conservation-panhandle",
		Category:          types.CategoryBusinesses,
		Title:             "Ranch Water Conservation Technology",
		Description:       "Water conservation technology for Texas ranches and farms, from soil sensors to drip retrofits.",
		Region:            types.RegionPanhandle,
		EducationRequired: types.EducationAssociate,
		Skills:            []string{"irrigation", "agriculture", "technology"},
		YearsExperience:   2,
		StartupCost:       30000,
		SalaryRange:       "$40,000 - $80,000 net",
		TimeToStart:       types.StartPlanningStage,
		NextSteps: []string{
			"Pilot sensor kits with two or three area ranches",
			"Apply for agricultural innovation grants",
		},
		ContactInfo: []string{"Lubbock SBA Branch Office: (806) 472-7462"},
		Programs: []types.Program{
			{Type: "State", Name: "Agricultural Innovation"},
			{Type: "SBA", Name: "Microloan Program"},
		},
	},

	// Self-employment
	{
		ID:                "self-content-creator-austin",
		Category:          types.CategorySelfEmployment,
		Title:             "Freelance Texas Tourism Content Creator",
		Description:       "Freelance content creator specializing in Texas tourism for visitor bureaus and hospitality brands.",
		Region:            types.RegionAustin,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"writing", "photography", "social media"},
		YearsExperience:   0,
		SalaryRange:       "$25,000 - $70,000 net",
		TimeToStart:       types.StartImmediate,
		Remote:            true,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Assemble a portfolio of three destination features",
			"Pitch regional visitor bureaus directly",
		},
		ContactInfo: []string{"SCORE Austin: (512) 928-2425"},
		Programs: []types.Program{
			{Type: "SBA", Name: "SCORE Mentorship"},
		},
	},
	{
		ID:                "self-mobile-notary-westtx",
		Category:          types.CategorySelfEmployment,
		Title:             "Mobile Notary Public",
		Description:       "Mobile notary public serving rural West Texas communities where the nearest office is an hour away.",
		Region:            types.RegionWestTexas,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"notary", "driving", "scheduling"},
		YearsExperience:   0,
		SalaryRange:       "$20,000 - $45,000 net",
		TimeToStart:       types.StartWithinMonth,
		DisabilityFriendly: true,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Obtain a Texas notary commission and E&O insurance",
			"List services with county clerks and title companies",
		},
		ContactInfo: []string{"West Texas SBDC: (325) 942-2098"},
		Programs: []types.Program{
			{Type: "State", Name: "Rural Enterprise"},
		},
	},
	{
		ID:                "self-drone-photography-panhandle",
		Category:          types.CategorySelfEmployment,
		Title:             "Ranch and Property Drone Photographer",
		Description:       "Drone photographer for Texas ranches and properties, producing listing and survey imagery.",
		Region:            types.RegionPanhandle,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"drone piloting", "photography", "editing"},
		YearsExperience:   1,
		SalaryRange:       "$30,000 - $65,000 net",
		TimeToStart:       types.StartWithinMonth,
		VeteranPreferred:  true,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Earn an FAA Part 107 remote pilot certificate",
			"Partner with rural real estate brokers",
		},
		ContactInfo: []string{"Workforce Solutions Panhandle: (806) 372-3381"},
		Programs: []types.Program{
			{Type: "DOL", Name: "Veterans Employment and Training"},
		},
	},
	{
		ID:                "self-translator-elpaso",
		Category:          types.CategorySelfEmployment,
		Title:             "Freelance Business Document Translator",
		Description:       "Freelance translator for Texas-Mexico business documents, contracts, and customs paperwork.",
		Region:            types.RegionElPaso,
		EducationRequired: types.EducationAssociate,
		Skills:            []string{"spanish", "translation", "writing"},
		YearsExperience:   2,
		SalaryRange:       "$35,000 - $75,000 net",
		TimeToStart:       types.StartImmediate,
		Remote:            true,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Obtain certification from the American Translators Association",
			"Register with cross-border freight brokers",
		},
		ContactInfo: []string{"Upper Rio Grande Workforce Solutions: (915) 887-2600"},
		Programs: []types.Program{
			{Type: "State", Name: "Binational Workforce Development"},
		},
	},

	// Contracts
	{
		ID:                "contract-school-tech-centraltx",
		Category:          types.CategoryContracts,
		Title:             "School District Technology Implementation",
		Description:       "School district technology implementation specialist rolling out classroom devices and networks.",
		Region:            types.RegionCentralTexas,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"networking", "project management", "training"},
		YearsExperience:   3,
		SalaryRange:       "$60 - $95 per hour",
		TimeToStart:       types.StartWithin3Months,
		NextSteps: []string{
			"Register on the Texas SmartBuy vendor portal",
			"Respond to regional education service center RFPs",
		},
		ContactInfo: []string{"Central Texas SBDC Government Contracting: (254) 299-8141"},
		Programs: []types.Program{
			{Type: "State", Name: "Government Contracting"},
			{Type: "SBA", Name: "8(a) Business Development"},
		},
	},
	{
		ID:                "contract-municipal-web-easttx",
		Category:          types.CategoryContracts,
		Title:             "Municipal Website Development and Maintenance",
		Description:       "Municipal website development and maintenance for small East Texas cities and utility districts.",
		Region:            types.RegionEastTexas,
		EducationRequired: types.EducationSomeCollege,
		Skills:            []string{"web development", "accessibility", "maintenance"},
		YearsExperience:   2,
		SalaryRange:       "$45 - $85 per hour",
		TimeToStart:       types.StartWithinMonth,
		Remote:            true,
		DisabilityFriendly: true,
		NextSteps: []string{
			"Prepare ADA-compliant site samples",
			"Contact city secretaries about current vendors",
		},
		ContactInfo: []string{"East Texas SBDC: (903) 510-2975"},
		Programs: []types.Program{
			{Type: "State", Name: "Government Contracting"},
		},
	},
	{
		ID:                "contract-grant-writer-rgv",
		Category:          types.CategoryContracts,
		Title:             "Rural Development Grant Writer",
		Description:       "Grant writer for Texas rural development initiatives, serving colonias and agricultural nonprofits.",
		Region:            types.RegionRioGrandeValley,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"writing", "research", "budgeting"},
		YearsExperience:   2,
		SalaryRange:       "$50 - $90 per hour",
		TimeToStart:       types.StartImmediate,
		Remote:            true,
		PartTimeAvailable: true,
		NextSteps: []string{
			"Collect two or three funded proposals as work samples",
			"Register with regional councils of government",
		},
		ContactInfo: []string{"Lower Rio Grande Valley SBDC: (956) 665-7535"},
		Programs: []types.Program{
			{Type: "State", Name: "Colonias Initiatives"},
		},
	},
	{
		ID:                "contract-disaster-recovery-gulf",
		Category:          types.CategoryContracts,
		Title:             "Gulf Coast Disaster Recovery Specialist",
		Description:       "Disaster recovery specialist for Gulf Coast communities managing federal recovery funds after storms.",
		Region:            types.RegionGulfCoast,
		EducationRequired: types.EducationBachelor,
		Skills:            []string{"emergency management", "compliance", "reporting"},
		YearsExperience:   4,
		SalaryRange:       "$70 - $120 per hour",
		TimeToStart:       types.StartWithin3Months,
		VeteranPreferred:  true,
		NextSteps: []string{
			"Complete FEMA incident command coursework",
			"Register in SAM.gov for federal contracting",
		},
		ContactInfo: []string{"Workforce Solutions Gulf Coast: (713) 688-6890"},
		Programs: []types.Program{
			{Type: "SBA", Name: "8(a) Business Development"},
			{Type: "State", Name: "Maritime Training"},
		},
	},
}
