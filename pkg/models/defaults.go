package models

// Built-in content the store falls back to when both the persistent cache and
// the remote service have nothing for a collection. The values mirror the
// seed data shipped with the public site.

// DefaultWebsites returns the seed portfolio. Callers get a fresh copy.
func DefaultWebsites() []Website {
	return []Website{
		{
			ID:           "1",
			Name:         "FashionHub Online Store",
			Client:       "Fashion House",
			Description:  "Интернет-магазин премиум одежды с каталогом 5000+ товаров, личным кабинетом, интеграцией с платежными системами и системой лояльности",
			URL:          "https://example-fashion.com",
			Screenshot:   "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1200&h=800&fit=crop",
			Technologies: []string{"React", "Next.js", "Stripe", "PostgreSQL", "Tailwind CSS"},
			Category:     "E-commerce",
			Date:         "2025-12",
			Featured:     true,
		},
		{
			ID:           "2",
			Name:         "LogiTrack Dashboard",
			Client:       "Cargo Express",
			Description:  "Панель управления логистической компанией с трекингом грузов в реальном времени",
			URL:          "https://example-cargo.com",
			Screenshot:   "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=1200&h=800&fit=crop",
			Technologies: []string{"Vue.js", "Django", "WebSocket", "Redis", "Google Maps API"},
			Category:     "Dashboard",
			Date:         "2025-11",
			Featured:     true,
		},
		{
			ID:           "3",
			Name:         "EduPlatform Learning",
			Client:       "EduTech",
			Description:  "Образовательная платформа с видеокурсами, тестированием и AI-помощником",
			URL:          "https://example-edu.com",
			Screenshot:   "https://images.unsplash.com/photo-1501504905252-473c47e087f8?w=1200&h=800&fit=crop",
			Technologies: []string{"Next.js", "Python", "TensorFlow", "MongoDB", "AWS"},
			Category:     "EdTech",
			Date:         "2025-10",
			Featured:     false,
		},
	}
}

// DefaultTemplates returns the seed automation templates. Callers get a fresh
// copy.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:           "crm-integration",
			Title:        "CRM интеграция с мессенджерами",
			Description:  "Автоматическая синхронизация обращений клиентов из мессенджеров в вашу CRM-систему",
			Customizable: []string{"Мессенджер", "CRM система", "Правила фильтрации"},
			Workflow: []WorkflowStep{
				{ID: "1", Label: "Webhook", Type: StepTypeTrigger, Description: "Получение сообщения из мессенджера", Position: StepPosition{Sequence: 1}},
				{ID: "2", Label: "Парсинг", Type: StepTypeProcess, Description: "Извлечение текста и метаданных", Position: StepPosition{Sequence: 2}},
				{ID: "3", Label: "Логирование", Type: StepTypeProcess, Description: "Сохранение в БД для аналитики", Position: StepPosition{Sequence: 3}},
				{ID: "4", Label: "Поиск в CRM", Type: StepTypeAPI, Description: "Проверка существования клиента", Position: StepPosition{Sequence: 4}},
				{ID: "5", Label: "Существует?", Type: StepTypeProcess, Description: "Проверка наличия контакта", Position: StepPosition{Sequence: 5}},
				{ID: "6", Label: "Создать контакт", Type: StepTypeAPI, Description: "Добавление нового клиента", Position: StepPosition{Sequence: 6, Branch: BranchUp}},
				{ID: "7", Label: "Обновить данные", Type: StepTypeAPI, Description: "Обновление контакта", Position: StepPosition{Sequence: 6, Branch: BranchDown}},
				{ID: "8", Label: "Создать обращение", Type: StepTypeAPI, Description: "Запись обращения в CRM", Position: StepPosition{Sequence: 7}},
				{ID: "9", Label: "Уведомить менеджера", Type: StepTypeNotification, Description: "Отправка уведомления", Position: StepPosition{Sequence: 8}},
				{ID: "10", Label: "Ответ клиенту", Type: StepTypeNotification, Description: "Автоответ в мессенджер", Position: StepPosition{Sequence: 9}},
				{ID: "11", Label: "Готово", Type: StepTypeComplete, Description: "Обработка завершена", Position: StepPosition{Sequence: 10}},
			},
			Status: TemplateStatusActive,
		},
		{
			ID:           "ai-support",
			Title:        "AI Ассистент для поддержки",
			Description:  "Умный бот с GPT-4 для автоматической обработки запросов клиентов и эскалации к людям",
			Customizable: []string{"AI модель", "База знаний", "Правила эскалации"},
			Workflow: []WorkflowStep{
				{ID: "1", Label: "Новый запрос", Type: StepTypeTrigger, Description: "Сообщение от клиента", Position: StepPosition{Sequence: 1}},
				{ID: "2", Label: "Классификация", Type: StepTypeProcess, Description: "AI определяет тип вопроса", Position: StepPosition{Sequence: 2}},
				{ID: "3", Label: "Простой вопрос", Type: StepTypeProcess, Description: "FAQ, инструкции", Position: StepPosition{Sequence: 3, Branch: BranchUp}},
				{ID: "4", Label: "Сложный вопрос", Type: StepTypeProcess, Description: "Требует человека", Position: StepPosition{Sequence: 3, Branch: BranchDown}},
				{ID: "5", Label: "AI ответ", Type: StepTypeAPI, Description: "GPT генерирует ответ", Position: StepPosition{Sequence: 4, Branch: BranchUp}},
				{ID: "6", Label: "Назначить оператору", Type: StepTypeAPI, Description: "Создание тикета", Position: StepPosition{Sequence: 4, Branch: BranchDown}},
				{ID: "7", Label: "Отправка клиенту", Type: StepTypeNotification, Description: "Ответ в мессенджер", Position: StepPosition{Sequence: 5}},
				{ID: "8", Label: "Сбор обратной связи", Type: StepTypeProcess, Description: "Оценка качества ответа", Position: StepPosition{Sequence: 6}},
				{ID: "9", Label: "Обучение модели", Type: StepTypeProcess, Description: "Улучшение AI", Position: StepPosition{Sequence: 7}},
				{ID: "10", Label: "Готово", Type: StepTypeComplete, Description: "Запрос обработан", Position: StepPosition{Sequence: 8}},
			},
			Status: TemplateStatusActive,
		},
		{
			ID:           "ecommerce-funnel",
			Title:        "E-commerce воронка продаж",
			Description:  "Автоматизация пути клиента от брошенной корзины до повторной покупки с персонализацией",
			Customizable: []string{"Платформа", "Триггеры", "Скидки и офферы"},
			Workflow: []WorkflowStep{
				{ID: "1", Label: "Брошенная корзина", Type: StepTypeTrigger, Description: "Клиент не завершил покупку", Position: StepPosition{Sequence: 1}},
				{ID: "2", Label: "Анализ поведения", Type: StepTypeProcess, Description: "Изучение истории клиента", Position: StepPosition{Sequence: 2}},
				{ID: "3", Label: "Ждем 1 час", Type: StepTypeProcess, Description: "Отложенная отправка", Position: StepPosition{Sequence: 3}},
				{ID: "4", Label: "Email со скидкой 10%", Type: StepTypeNotification, Description: "Первое напоминание", Position: StepPosition{Sequence: 4}},
				{ID: "5", Label: "Купил?", Type: StepTypeProcess, Description: "Проверка заказа", Position: StepPosition{Sequence: 5}},
				{ID: "6", Label: "Спасибо за покупку", Type: StepTypeNotification, Description: "Благодарность + кросс-селл", Position: StepPosition{Sequence: 6, Branch: BranchDown}},
				{ID: "7", Label: "Ждем 24 часа", Type: StepTypeProcess, Description: "Второе ожидание", Position: StepPosition{Sequence: 6, Branch: BranchUp}},
				{ID: "8", Label: "SMS со скидкой 15%", Type: StepTypeNotification, Description: "Последняя попытка", Position: StepPosition{Sequence: 7}},
				{ID: "9", Label: "Push в ретаргетинг", Type: StepTypeAPI, Description: "Реклама в соцсетях", Position: StepPosition{Sequence: 8}},
				{ID: "10", Label: "Готово", Type: StepTypeComplete, Description: "Воронка завершена", Position: StepPosition{Sequence: 9}},
			},
			Status: TemplateStatusActive,
		},
		{
			ID:           "monitoring-alerts",
			Title:        "Система мониторинга и алертов",
			Description:  "Автоматический мониторинг сервисов с умной эскалацией инцидентов и самовосстановлением",
			Customizable: []string{"Метрики", "Пороги срабатывания", "Команды on-call"},
			Workflow: []WorkflowStep{
				{ID: "1", Label: "Метрики сервера", Type: StepTypeTrigger, Description: "Каждые 30 секунд", Position: StepPosition{Sequence: 1}},
				{ID: "2", Label: "Анализ аномалий", Type: StepTypeProcess, Description: "AI детекция проблем", Position: StepPosition{Sequence: 2}},
				{ID: "3", Label: "Все ОК", Type: StepTypeProcess, Description: "Нормальные показатели", Position: StepPosition{Sequence: 3, Branch: BranchDown}},
				{ID: "4", Label: "Проблема!", Type: StepTypeProcess, Description: "Превышен порог", Position: StepPosition{Sequence: 3, Branch: BranchUp}},
				{ID: "5", Label: "Авто-исправление", Type: StepTypeAPI, Description: "Перезапуск, масштабирование", Position: StepPosition{Sequence: 4, Branch: BranchUp}},
				{ID: "6", Label: "Slack уведомление", Type: StepTypeNotification, Description: "Оповещение дежурному", Position: StepPosition{Sequence: 4, Branch: BranchDown}},
				{ID: "7", Label: "Проблема решена?", Type: StepTypeProcess, Description: "Проверка через 2 минуты", Position: StepPosition{Sequence: 5}},
				{ID: "8", Label: "Звонок on-call", Type: StepTypeNotification, Description: "Критичная эскалация", Position: StepPosition{Sequence: 6, Branch: BranchUp}},
				{ID: "9", Label: "Инцидент закрыт", Type: StepTypeAPI, Description: "Создание отчёта", Position: StepPosition{Sequence: 6, Branch: BranchDown}},
				{ID: "10", Label: "Готово", Type: StepTypeComplete, Description: "Мониторинг продолжается", Position: StepPosition{Sequence: 7}},
			},
			Status: TemplateStatusActive,
		},
	}
}

// DefaultPages returns the seed page content. Callers get a fresh copy.
func DefaultPages() []PageContent {
	return []PageContent{
		{
			ID:       "home",
			Name:     "Главная",
			Sections: 5,
			Updated:  "2 часа назад",
			Content: PageBody{
				Hero: &HeroBlock{
					Badge:       "Информационные технологии будущего",
					Title:       "Информационные решения\nдля вашего бизнеса",
					Subtitle:    "для вашего бизнеса",
					Description: "IT-компания, которая помогает решать проблемы через современные технологии. Мы можем разработать почти всё что угодно.",
					CTAText:     "Начать проект",
					CTALink:     "/custom",
				},
				Features: []FeatureItem{
					{ID: "1", Title: "Готовые решения", Description: "Библиотека проверенных шаблонов для быстрого старта вашего проекта", Link: "/templates", Icon: "code"},
					{ID: "2", Title: "Быстрое внедрение", Description: "От идеи до запуска за 2-4 недели благодаря автоматизации", Link: "/templates", Icon: "zap"},
					{ID: "3", Title: "Полная безопасность", Description: "Современные протоколы шифрования и защита данных на всех уровнях", Link: "/about", Icon: "shield"},
				},
				Projects: []ProjectItem{
					{
						ID:          "1",
						Title:       "E-commerce платформа",
						Category:    "Интернет-магазин",
						Image:       "https://images.unsplash.com/photo-1592773307163-962d25055c3c?w=1080",
						Description: "Полнофункциональная платформа с интеграцией платежей и аналитикой",
						Tech:        []string{"React", "Node.js", "PostgreSQL"},
					},
					{
						ID:          "2",
						Title:       "Аналитическая dashboard",
						Category:    "Бизнес-аналитика",
						Image:       "https://images.unsplash.com/photo-1759752394755-1241472b589d?w=1080",
						Description: "Визуализация данных в реальном времени для принятия решений",
						Tech:        []string{"Python", "Django", "Redis"},
					},
					{
						ID:          "3",
						Title:       "Мобильное приложение",
						Category:    "Mobile Development",
						Image:       "https://images.unsplash.com/photo-1605108222700-0d605d9ebafe?w=1080",
						Description: "Кроссплатформенное приложение для iOS и Android",
						Tech:        []string{"React Native", "TypeScript"},
					},
				},
				Solutions: []FeatureItem{
					{ID: "1", Title: "CRM интеграция", Description: "Автоматическая синхронизация обращений клиентов из мессенджеров", Link: "/templates", Icon: "message-square"},
					{ID: "2", Title: "Email-рассылки", Description: "Триггерные рассылки с персонализацией и аналитикой", Link: "/templates", Icon: "mail"},
					{ID: "3", Title: "Синхронизация данных", Description: "Двусторонняя синхронизация между системами в реальном времени", Link: "/templates", Icon: "database"},
				},
				Capabilities: []CapabilityItem{
					{ID: "1", Title: "Data Analytics", Description: "Визуализация и анализ", Image: "https://images.unsplash.com/photo-1759661966728-4a02e3c6ed91?w=1080", Icon: "boxes"},
					{ID: "2", Title: "AI & ML", Description: "Машинное обучение", Image: "https://images.unsplash.com/photo-1675495277087-10598bf7bcd1?w=1080", Icon: "cpu"},
					{ID: "3", Title: "Backend API", Description: "Серверные решения", Image: "https://images.unsplash.com/photo-1661669999755-1e5b36d9e9ba?w=1080", Icon: "code"},
					{ID: "4", Title: "3D визуализация", Description: "Интерактивные модели", Image: "https://images.unsplash.com/photo-1658806283210-6d7330062704?w=1080", Icon: "workflow"},
				},
				Stats: []StatItem{
					{ID: "1", Value: "100+", Label: "Реализованных проектов"},
					{ID: "2", Value: "50+", Label: "Довольных клиентов"},
					{ID: "3", Value: "5+", Label: "Лет опыта"},
					{ID: "4", Value: "24/7", Label: "Техподдержка"},
				},
				Sections: []ContentSection{},
			},
		},
		{
			ID:       "about",
			Name:     "О нас",
			Sections: 4,
			Updated:  "1 день назад",
			Content: PageBody{
				Hero: &HeroBlock{
					Badge:       "О компании АТИИ",
					Title:       "Мы создаем\nбудущее",
					Subtitle:    "будущее",
					Description: "IT-компания, которая помогает решать проблемы через информационные решения. Мы можем разработать почти всё что угодно.",
				},
				Stats: []StatItem{
					{ID: "1", Value: "100+", Label: "Проектов реализовано", Icon: "target"},
					{ID: "2", Value: "50+", Label: "Довольных клиентов", Icon: "users"},
					{ID: "3", Value: "24/7", Label: "Техническая поддержка", Icon: "zap"},
					{ID: "4", Value: "5+", Label: "Лет на рынке", Icon: "trending-up"},
				},
				Values: []ValueItem{
					{ID: "1", Title: "Технологическая экспертиза", Description: "Мы владеем современными технологиями и всегда следим за инновациями в IT-индустрии", Icon: "code2", Color: "from-red-600 to-pink-600"},
					{ID: "2", Title: "Качество превыше всего", Description: "Каждый проект проходит строгий контроль качества и соответствует лучшим практикам", Icon: "award", Color: "from-purple-600 to-red-600"},
					{ID: "3", Title: "Глобальный подход", Description: "Работаем с клиентами по всему миру, создавая решения мирового уровня", Icon: "globe", Color: "from-red-600 to-orange-600"},
					{ID: "4", Title: "Инновации и творчество", Description: "Каждое решение - это уникальный продукт, созданный с творческим подходом", Icon: "sparkles", Color: "from-red-600 to-red-800"},
				},
				Technologies: []string{
					"React", "Node.js", "Python", "TypeScript", "Docker", "Kubernetes",
					"AWS", "PostgreSQL", "MongoDB", "Redis", "GraphQL", "REST API",
					"Microservices", "CI/CD", "Machine Learning", "Blockchain",
				},
				Sections: []ContentSection{},
			},
		},
		{
			ID:       "templates",
			Name:     "Готовые решения",
			Sections: 6,
			Updated:  "3 часа назад",
			Content: PageBody{
				Hero: &HeroBlock{
					Title:       "Готовые решения",
					Description: "Проверенные шаблоны и алгоритмы с возможностью настройки под ваши задачи.",
				},
				Sections: []ContentSection{},
			},
		},
		{
			ID:       "custom",
			Name:     "Под ключ",
			Sections: 7,
			Updated:  "5 часов назад",
			Content: PageBody{
				Hero: &HeroBlock{
					Badge:       "Премиум услуга",
					Title:       "Решения под ключ",
					Subtitle:    "под ключ",
					Description: "Любая ваша идея — от концепции до полной реализации. Вы управляете процессом, мы воплощаем самые смелые задачи.",
				},
				WorkflowSteps: []ProcessStep{
					{
						ID:          "1",
						Title:       "Консультация",
						Description: "Детально обсуждаем вашу задачу и формируем техническое задание",
						Duration:    "1-3 дня",
						Details:     []string{"Анализ бизнес-процессов", "Определение целей проекта", "Оценка сроков и бюджета"},
						Icon:        "users",
					},
					{
						ID:          "2",
						Title:       "Проектирование",
						Description: "Разрабатываем архитектуру и план реализации вашего решения",
						Duration:    "5-10 дней",
						Details:     []string{"Техническая архитектура", "Дизайн интерфейсов", "План разработки"},
						Icon:        "target",
					},
					{
						ID:          "3",
						Title:       "Разработка",
						Description: "Создаем ваше решение с использованием современных технологий",
						Duration:    "2-8 недель",
						Details:     []string{"Backend разработка", "Frontend разработка", "Интеграции с сервисами"},
						Icon:        "code",
					},
					{
						ID:          "4",
						Title:       "Запуск",
						Description: "Тестирование, внедрение и передача проекта",
						Duration:    "3-7 дней",
						Details:     []string{"Тестирование системы", "Развертывание", "Обучение команды"},
						Icon:        "rocket",
					},
				},
				Advantages: []FeatureItem{
					{ID: "1", Title: "Гибкость", Description: "Полный контроль над процессом разработки", Icon: "layers"},
					{ID: "2", Title: "Любые технологии", Description: "Используем оптимальный стек для вашего проекта", Icon: "zap"},
					{ID: "3", Title: "Масштабируемость", Description: "Система растет вместе с вашим бизнесом", Icon: "line-chart"},
					{ID: "4", Title: "Безопасность", Description: "Современные протоколы защиты данных", Icon: "shield"},
					{ID: "5", Title: "Полная интеграция", Description: "Подключение к любым внешним системам", Icon: "globe"},
					{ID: "6", Title: "Поддержка 24/7", Description: "Техническое сопровождение после запуска", Icon: "users"},
				},
				CaseStudies: []CaseStudy{
					{
						ID:          "1",
						Title:       "Платформа для финтех",
						Description: "Система для управления финансовыми операциями с интеграцией банковских API",
						Tech:        []string{"React", "Node.js", "PostgreSQL", "Stripe API"},
					},
					{
						ID:          "2",
						Title:       "AI-аналитика для e-commerce",
						Description: "Платформа прогнозирования спроса с использованием машинного обучения",
						Tech:        []string{"Python", "TensorFlow", "FastAPI", "Kubernetes"},
					},
				},
				Sections: []ContentSection{},
			},
		},
	}
}

// DefaultSettings returns the seed site settings.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "АТИИ - IT решения",
		Domain:          "atii.ru",
		Description:     "IT-компания, которая помогает решать проблемы через информационные решения",
		PrimaryColor:    "#EF4444",
		AccentColor:     "#9333EA",
		BackgroundColor: "#000000",
	}
}

// DefaultWorkflowSchemas returns the seed schema map, which starts empty.
func DefaultWorkflowSchemas() map[string][]SchemaNode {
	return map[string][]SchemaNode{}
}
