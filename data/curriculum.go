package data

import "learntrack/model"

// Curriculum returns the fixed 16-week generative AI study plan. It is used
// only to seed the module collection when nothing has been persisted yet;
// identifiers are stable slugs so re-seeding produces the same set.
func Curriculum() []model.Module {
	return []model.Module{
		{
			ModuleID:    "week-01-python-foundations",
			Title:       "Python & Math Foundations",
			Description: "Refresh Python, NumPy and the linear algebra and calculus needed for everything that follows.",
			WeekNumber:  1,
			Topics: []string{
				"Python refresher",
				"NumPy and vectorized computation",
				"Linear algebra essentials",
				"Derivatives and gradients",
			},
			Resources: []model.Resource{
				{Title: "Mathematics for Machine Learning", URL: "https://mml-book.github.io/", Type: model.ResourceBook},
				{Title: "NumPy Quickstart", URL: "https://numpy.org/doc/stable/user/quickstart.html", Type: model.ResourceArticle},
				{Title: "Essence of Linear Algebra", URL: "https://www.3blue1brown.com/topics/linear-algebra", Type: model.ResourceVideo},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-02-ml-basics",
			Title:       "Machine Learning Basics",
			Description: "Supervised learning, loss functions, and gradient descent from scratch.",
			WeekNumber:  2,
			Topics: []string{
				"Regression and classification",
				"Loss functions",
				"Gradient descent",
				"Train/validation/test splits",
			},
			Resources: []model.Resource{
				{Title: "Andrew Ng: Machine Learning Specialization", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Type: model.ResourceCourse},
				{Title: "Linear regression from scratch", URL: "https://machinelearningmastery.com/linear-regression-tutorial-using-gradient-descent-for-machine-learning/", Type: model.ResourceArticle},
			},
			EstimatedHours: 10,
		},
		{
			ModuleID:    "week-03-neural-networks",
			Title:       "Neural Networks",
			Description: "Perceptrons to multilayer networks; backpropagation by hand and in code.",
			WeekNumber:  3,
			Topics: []string{
				"Perceptrons and activations",
				"Backpropagation",
				"Weight initialization",
				"Regularization and dropout",
			},
			Resources: []model.Resource{
				{Title: "Neural Networks: Zero to Hero", URL: "https://karpathy.ai/zero-to-hero.html", Type: model.ResourceVideo},
				{Title: "Neural Networks and Deep Learning", URL: "http://neuralnetworksanddeeplearning.com/", Type: model.ResourceBook},
			},
			EstimatedHours: 14,
		},
		{
			ModuleID:    "week-04-pytorch",
			Title:       "Deep Learning with PyTorch",
			Description: "Tensors, autograd, training loops, and GPU-backed experimentation.",
			WeekNumber:  4,
			Topics: []string{
				"Tensors and autograd",
				"Datasets and dataloaders",
				"Training loops",
				"Saving and loading models",
			},
			Resources: []model.Resource{
				{Title: "PyTorch Tutorials", URL: "https://pytorch.org/tutorials/", Type: model.ResourceArticle},
				{Title: "Deep Learning with PyTorch", URL: "https://pytorch.org/deep-learning-with-pytorch", Type: model.ResourceBook},
				{Title: "Build a digit classifier", URL: "https://github.com/pytorch/examples/tree/main/mnist", Type: model.ResourceProject},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-05-nlp-fundamentals",
			Title:       "NLP Fundamentals",
			Description: "Tokenization, embeddings, and classic sequence models before attention.",
			WeekNumber:  5,
			Topics: []string{
				"Tokenization and vocabularies",
				"Word embeddings",
				"RNNs and LSTMs",
				"Sequence-to-sequence models",
			},
			Resources: []model.Resource{
				{Title: "Speech and Language Processing", URL: "https://web.stanford.edu/~jurafsky/slp3/", Type: model.ResourceBook},
				{Title: "The Illustrated Word2vec", URL: "https://jalammar.github.io/illustrated-word2vec/", Type: model.ResourceArticle},
			},
			EstimatedHours: 10,
		},
		{
			ModuleID:    "week-06-attention-transformers",
			Title:       "Attention & Transformers",
			Description: "The attention mechanism and the transformer architecture end to end.",
			WeekNumber:  6,
			Topics: []string{
				"Scaled dot-product attention",
				"Multi-head attention",
				"Positional encodings",
				"Encoder/decoder stacks",
			},
			Resources: []model.Resource{
				{Title: "Attention Is All You Need", URL: "https://arxiv.org/abs/1706.03762", Type: model.ResourceArticle},
				{Title: "The Illustrated Transformer", URL: "https://jalammar.github.io/illustrated-transformer/", Type: model.ResourceArticle},
				{Title: "nanoGPT walkthrough", URL: "https://www.youtube.com/watch?v=kCc8FmEb1nY", Type: model.ResourceVideo},
			},
			EstimatedHours: 14,
		},
		{
			ModuleID:    "week-07-llm-pretraining",
			Title:       "LLM Pretraining",
			Description: "How large language models are trained: data, objectives, and scaling laws.",
			WeekNumber:  7,
			Topics: []string{
				"Causal language modeling",
				"Data pipelines and curation",
				"Scaling laws",
				"Distributed training basics",
			},
			Resources: []model.Resource{
				{Title: "Chinchilla scaling laws", URL: "https://arxiv.org/abs/2203.15556", Type: model.ResourceArticle},
				{Title: "Train nanoGPT on your own corpus", URL: "https://github.com/karpathy/nanoGPT", Type: model.ResourceProject},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-08-finetuning",
			Title:       "Fine-tuning & Alignment",
			Description: "Instruction tuning, LoRA/PEFT, and RLHF at a practical level.",
			WeekNumber:  8,
			Topics: []string{
				"Supervised fine-tuning",
				"LoRA and parameter-efficient methods",
				"RLHF and DPO",
				"Evaluation of tuned models",
			},
			Resources: []model.Resource{
				{Title: "Hugging Face PEFT docs", URL: "https://huggingface.co/docs/peft", Type: model.ResourceArticle},
				{Title: "InstructGPT paper", URL: "https://arxiv.org/abs/2203.02155", Type: model.ResourceArticle},
				{Title: "Fine-tune a small model on a custom dataset", URL: "https://huggingface.co/docs/transformers/training", Type: model.ResourceProject},
			},
			EstimatedHours: 14,
		},
		{
			ModuleID:    "week-09-prompting",
			Title:       "Prompt Engineering",
			Description: "Systematic prompting: few-shot, chain-of-thought, and structured outputs.",
			WeekNumber:  9,
			Topics: []string{
				"Zero-shot and few-shot prompting",
				"Chain-of-thought",
				"Structured output and function calling",
				"Prompt evaluation",
			},
			Resources: []model.Resource{
				{Title: "Prompt Engineering Guide", URL: "https://www.promptingguide.ai/", Type: model.ResourceArticle},
				{Title: "OpenAI function calling docs", URL: "https://platform.openai.com/docs/guides/function-calling", Type: model.ResourceArticle},
			},
			EstimatedHours: 8,
		},
		{
			ModuleID:    "week-10-rag",
			Title:       "Retrieval-Augmented Generation",
			Description: "Embeddings, vector stores, chunking, and building a full RAG pipeline.",
			WeekNumber:  10,
			Topics: []string{
				"Text embeddings",
				"Vector databases",
				"Chunking strategies",
				"RAG evaluation",
			},
			Resources: []model.Resource{
				{Title: "RAG survey paper", URL: "https://arxiv.org/abs/2312.10997", Type: model.ResourceArticle},
				{Title: "Build a document Q&A bot", URL: "https://python.langchain.com/docs/tutorials/rag/", Type: model.ResourceProject},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-11-agents",
			Title:       "Agents & Tool Use",
			Description: "LLMs that plan, call tools, and operate in loops with memory.",
			WeekNumber:  11,
			Topics: []string{
				"ReAct and planning loops",
				"Tool calling",
				"Agent memory",
				"Multi-agent patterns",
			},
			Resources: []model.Resource{
				{Title: "ReAct paper", URL: "https://arxiv.org/abs/2210.03629", Type: model.ResourceArticle},
				{Title: "Build a research agent", URL: "https://github.com/langchain-ai/langgraph", Type: model.ResourceProject},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-12-multimodal",
			Title:       "Multimodal Models",
			Description: "Diffusion models, CLIP, and vision-language architectures.",
			WeekNumber:  12,
			Topics: []string{
				"Diffusion model fundamentals",
				"CLIP and contrastive learning",
				"Vision-language models",
				"Image generation pipelines",
			},
			Resources: []model.Resource{
				{Title: "What are Diffusion Models?", URL: "https://lilianweng.github.io/posts/2021-07-11-diffusion-models/", Type: model.ResourceArticle},
				{Title: "Hugging Face Diffusers course", URL: "https://huggingface.co/learn/diffusion-course", Type: model.ResourceCourse},
			},
			EstimatedHours: 12,
		},
		{
			ModuleID:    "week-13-llmops",
			Title:       "Serving & LLMOps",
			Description: "Inference optimization, quantization, serving stacks, and cost control.",
			WeekNumber:  13,
			Topics: []string{
				"Quantization (GGUF, AWQ)",
				"KV-cache and batching",
				"Serving with vLLM",
				"Latency and cost tradeoffs",
			},
			Resources: []model.Resource{
				{Title: "vLLM documentation", URL: "https://docs.vllm.ai/", Type: model.ResourceArticle},
				{Title: "Efficient LLM inference survey", URL: "https://arxiv.org/abs/2312.03863", Type: model.ResourceArticle},
			},
			EstimatedHours: 10,
		},
		{
			ModuleID:    "week-14-evaluation-safety",
			Title:       "Evaluation & Safety",
			Description: "Benchmarks, LLM-as-judge, red-teaming, and guardrails.",
			WeekNumber:  14,
			Topics: []string{
				"Benchmarks and their limits",
				"LLM-as-judge evaluation",
				"Jailbreaks and red-teaming",
				"Guardrails in production",
			},
			Resources: []model.Resource{
				{Title: "Holistic Evaluation of Language Models", URL: "https://crfm.stanford.edu/helm/", Type: model.ResourceArticle},
				{Title: "Evaluate an LLM app end to end", URL: "https://github.com/openai/evals", Type: model.ResourceProject},
			},
			EstimatedHours: 10,
		},
		{
			ModuleID:    "week-15-capstone-build",
			Title:       "Capstone: Build",
			Description: "Design and build a complete generative AI application of your own.",
			WeekNumber:  15,
			Topics: []string{
				"Project scoping",
				"Architecture design",
				"Implementation",
				"Iteration on evals",
			},
			Resources: []model.Resource{
				{Title: "Full Stack LLM Bootcamp", URL: "https://fullstackdeeplearning.com/llm-bootcamp/", Type: model.ResourceCourse},
			},
			EstimatedHours: 16,
		},
		{
			ModuleID:    "week-16-capstone-ship",
			Title:       "Capstone: Ship",
			Description: "Deploy, document, and present the capstone; plan what to learn next.",
			WeekNumber:  16,
			Topics: []string{
				"Deployment",
				"Monitoring",
				"Writeup and demo",
				"Next steps",
			},
			Resources: []model.Resource{
				{Title: "Deploy your capstone", URL: "https://fly.io/docs/", Type: model.ResourceProject},
			},
			EstimatedHours: 12,
		},
	}
}
