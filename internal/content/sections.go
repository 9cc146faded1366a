package content

const (
	easeDuration  = 0.8
	revealMargin  = "-50px"
	headingMargin = "-100px"
)

func About() Section {
	return Section{
		ID:    "about",
		Title: "About Me",
		Paragraphs: []string{
			"Hi, I'm Abhinay, a researcher at Purdue interested in Computer vision, graphics and NLP.",
			"My thesis explored computer vision for medical imaging, where I developed a hybrid I-JEPA + Diffusion + GAN pipeline to address data scarcity and improve generation quality. As a Graduate Researcher, I also investigate adversarial attacks in NLP to strengthen model robustness, advancing AI security and efficiency.",
			"Previously, I worked as a Software Engineer at Infosys, where I built full-stack applications, developed REST APIs, and worked with cloud platforms such as AWS and Docker. My experience bridges deep learning, scalable cloud solutions, and HPC, shaping both my problem-solving approach and technical expertise.",
			"I am passionate about building and optimizing AI models, solving challenging research problems, and applying cutting-edge methods to real-world applications. I thrive in environments that foster collaboration, innovation, and continuous learning.",
			"If you'd like to collaborate on research, discuss AI innovations, or explore opportunities, feel free to connect!",
		},
		Animation: Animation{
			Entrance: Entrance{OffsetY: 20, Duration: 0.6, StaggerDelay: 0.1, Once: true, ViewMargin: headingMargin},
			Parallax: &Parallax{From: 100, To: -100},
			FadeStops: []FadeStop{
				{Progress: 0, Opacity: 0},
				{Progress: 0.2, Opacity: 1},
				{Progress: 0.8, Opacity: 1},
				{Progress: 1, Opacity: 0},
			},
		},
	}
}

func Experience() Section {
	return Section{
		ID:    "experience",
		Title: "Experience",
		Entries: []Entry{
			{
				Title:        "Graduate Research Assistant",
				Organization: "Purdue University, Indiana, Fort Wayne",
				Period:       "Aug 2024 – Present",
				Highlights: []string{
					"Master's Thesis: Investigating a hybrid IJEPA + Stable Diffusion + GAN pipeline to address data scarcity in medical imaging. Leveraging GPU-based HPC clusters for high-volume synthetic image generation.",
					"NLP Research: Transitioning from score-based adversarial attacks (EMNLP) to hard-labeled black-box scenarios, developing novel N-nary attack algorithms without model feedback.",
					"Hands-on experience with High-Performance Computing (HPC), training deep learning models on multi-node clusters.",
				},
			},
			{
				Title:        "Software Engineer",
				Organization: "Infosys Limited, Bangalore, India",
				Period:       "Sept 2021 – Aug 2023",
				Highlights: []string{
					"Built Spring Boot REST APIs integrated with Finacle Script for LMS–VAM (menu validation, redirects, SQL CRUD).",
					"Refactored modules for modularity and reusability, separating orchestration from Finacle business rules.",
					"Containerized microservices (fnhttp-va, lm) with Docker for reproducible, versioned releases.",
					"Coordinated rollouts with infrastructure across staging and production to minimize downtime.",
					"Monitored and optimized containers on AWS ECS, EC2, EFS, S3, and CloudWatch to improve scalability and reliability.",
					"Streamlined release cycles and service reliability through standardized containers and modular API architecture.",
				},
			},
			{
				Title:        "Machine Learning Engineer Intern",
				Organization: "The People's Corp, Bangalore, India",
				Period:       "Jan 2024 – Aug 2024",
				Highlights: []string{
					"Architected an enterprise RAG platform using OpenAI GPT-4, LangChain, and Pinecone to enable semantic search across 100k+ documents for cross-functional knowledge management.",
					"Implemented Cohere ReRank integration to improve retrieval precision, reducing irrelevant responses by ~40% and enhancing answer quality for business-critical queries.",
					"Deployed containerized RAG services on Kubernetes with a Redis caching layer, supporting high-concurrency workloads and reducing query latency by ~60% for 500+ daily users.",
					"Collaborated with product and operations teams to build an AI-powered knowledge hub, streamlining access to internal documentation and enabling interactive querying of policies and procedures.",
				},
			},
			{
				Title:        "Student & Assistant Teacher Intern",
				Organization: "JSpiders Institute, Bangalore, India",
				Period:       "Feb 2021 – Aug 2021",
				Highlights: []string{
					"Trained and certified in Java Full-Stack Development, Core and Advanced Java (J2EE), SQL, and PL/SQL.",
				},
			},
		},
		Animation: Animation{
			Entrance: Entrance{OffsetX: -20, Duration: easeDuration, StaggerDelay: 0.2, Once: true, ViewMargin: revealMargin},
			Parallax: &Parallax{From: 50, To: -50},
		},
	}
}

func Research() Section {
	return Section{
		ID:    "research",
		Title: "Current Research",
		Entries: []Entry{
			{
				Title:   "Computer Vision",
				Summary: "Beyond Representation Sampling: Segmentation-Aware Conditioning for Generative Models. Combining SAM and Mask2Former to build per-instance conditioning vectors for controllable, fully unsupervised image synthesis.",
				Status:  "Ongoing: Early experiments show improved FID and gains in precision and recall. Experiments are ongoing toward an ICML 2026 submission.",
			},
			{
				Title:  "Natural Language Processing (NLP)",
				Status: "Ongoing: Dynamic Token Field - Developing novel algorithms for hard-labeled adversarial attacks where model confidence scores are unavailable, focusing on robust text classification.",
			},
		},
		Animation: Animation{
			Entrance: Entrance{OffsetY: 30, Duration: easeDuration, StaggerDelay: 0.2, Once: true, ViewMargin: revealMargin},
			Parallax: &Parallax{From: 50, To: -50},
		},
	}
}

func Contact() Section {
	return Section{
		ID:    "contact",
		Title: "Get in Touch",
		Intro: "Interested in collaborating on research, discussing AI innovations, or exploring exciting opportunities? Let's connect!",
		Links: []Link{
			{Label: "Email", URL: "mailto:abhinaybelde@gmail.com"},
			{Label: "Phone", URL: "tel:+12605154640"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/abhinay-belde-3a384a1a0/"},
			{Label: "GitHub", URL: "https://github.com/08Abhinay"},
		},
		Animation: Animation{
			Entrance: Entrance{OffsetY: 20, Duration: easeDuration, StaggerDelay: 0.2, Once: true},
		},
	}
}
