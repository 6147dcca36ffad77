package fallback

import (
	"github.com/neuroscale/neuroscale-site/internal/types"
)

// Static copy served when the content service has nothing for a section.
// The admin-entered records replace all of this the moment they exist.

var slotDefaults = map[SlotKey]types.Title{
	SlotHero: {
		Name:        string(SlotHero),
		Details:     "Связаться с нами",
		Title:       "Внедряем ИИ в процессы вашего бизнеса",
		Description: "Автоматизируем продажи, поддержку и рутину — без замены ваших систем и команд.",
	},
	SlotAbout: {
		Name:  string(SlotAbout),
		Title: "О нас",
	},
	SlotPossibilitie: {
		Name:  string(SlotPossibilitie),
		Title: "Возможности",
	},
	SlotStage: {
		Name:  string(SlotStage),
		Title: "Этапы работы",
	},
	SlotCase: {
		Name:  string(SlotCase),
		Title: "Кейсы",
	},
	SlotFaq: {
		Name:  string(SlotFaq),
		Title: "Часто задаваемые вопросы",
	},
	SlotForm: {
		Name:        string(SlotForm),
		Title:       "Получите консультацию",
		Description: "Оставьте свои контакты — обсудим ваши задачи и подберём решение под ваш бизнес.",
	},
}

var titlesFallback = func() []types.Title {
	titles := make([]types.Title, 0, len(Slots))
	for _, slot := range Slots {
		titles = append(titles, slotDefaults[slot])
	}
	return titles
}()

var contactsFallback = []types.Contact{
	{Name: "phone", Value: "+7 (495) 000-00-00"},
	{Name: "email", Value: "hello@neuroscale.ru"},
	{Name: "telegram", Value: "https://t.me/neuroscale"},
	{Name: "whatsapp", Value: "https://wa.me/74950000000"},
	{Name: "max", Value: "https://max.ru/neuroscale"},
}

var aboutsFallback = []types.About{
	{
		Title: "25+ лет опыта в маркетинге и продажах",
		Text:  "Мы знаем, как устроены воронки и где бизнес теряет деньги, — и именно туда ставим автоматизацию.",
	},
	{
		Title: "Опытная команда разработчиков",
		Text:  "Инженеры, которые запускали решения для ритейла, медицины и B2B-услуг.",
	},
	{
		Title: "Понятный результат, а не «технологии ради технологий»",
		Text:  "Каждое внедрение считается в часах, заявках и выручке.",
	},
	{
		Title: "Адаптация под ваш бизнес, а не «как у всех»",
		Text:  "Разбираем ваши процессы и собираем решение под них, а не наоборот.",
	},
}

var statisticsFallback = []types.Statistic{
	{Title: "25+", Text: "лет опыта в маркетинге и продажах"},
	{Title: "40%", Text: "рутинных операций автоматизируем в среднем"},
	{Title: "14", Text: "дней от брифа до первого работающего сценария"},
	{Title: "50+", Text: "внедрённых решений"},
}

var possibilitiesFallback = []types.Possibilitie{
	{
		Title: "Продажи и лидогенерация",
		Text:  "ИИ-ассистент квалифицирует заявки и ведёт диалог до передачи менеджеру.",
		Points: []types.PossibilitiePoint{
			{Name: "Квалификация входящих заявок"},
			{Name: "Ответы клиентам в мессенджерах 24/7"},
			{Name: "Напоминания и дожим по тёплой базе"},
		},
	},
	{
		Title: "Поддержка клиентов",
		Text:  "Бот снимает типовые вопросы, люди занимаются сложными.",
		Points: []types.PossibilitiePoint{
			{Name: "База знаний по вашим регламентам"},
			{Name: "Эскалация на оператора с контекстом"},
			{Name: "Контроль качества ответов"},
		},
	},
	{
		Title: "Внутренняя рутина",
		Text:  "Документы, отчёты и сводки собираются без участия сотрудников.",
		Points: []types.PossibilitiePoint{
			{Name: "Автозаполнение CRM"},
			{Name: "Сводки звонков и встреч"},
			{Name: "Подготовка документов по шаблонам"},
		},
	},
}

var stagesFallback = []types.Stage{
	{
		Title: "Диагностика",
		Text:  "Разбираем процессы и находим места, где автоматизация окупится быстрее всего.",
		Happening: []types.StagePoint{
			{Name: "Интервью с командой"},
			{Name: "Карта процессов и потерь"},
		},
	},
	{
		Title: "Пилот",
		Text:  "Запускаем первый сценарий на ограниченном участке и измеряем эффект.",
		Happening: []types.StagePoint{
			{Name: "Рабочий сценарий за две недели"},
			{Name: "Метрики до и после"},
		},
	},
	{
		Title: "Внедрение",
		Text:  "Подключаем решение к вашим системам и обучаем сотрудников.",
		Happening: []types.StagePoint{
			{Name: "Интеграция с CRM и мессенджерами"},
			{Name: "Обучение команды"},
		},
	},
	{
		Title: "Сопровождение",
		Text:  "Следим за качеством, дообучаем сценарии и расширяем охват.",
		Happening: []types.StagePoint{
			{Name: "Мониторинг и отчётность"},
			{Name: "Развитие новых сценариев"},
		},
	},
}

var casesFallback = []types.Case{
	{
		Direction: "Ритейл",
		Title:     "Ассистент для интернет-магазина",
		Text:      "Поддержка не успевала отвечать на однотипные вопросы о заказах и доставке.",
		Solution:  "ИИ-ассистент в Telegram и WhatsApp с доступом к статусам заказов.",
		Effect:    "70% обращений закрываются без оператора, время ответа — секунды.",
	},
	{
		Direction: "B2B-услуги",
		Title:     "Квалификация входящих заявок",
		Text:      "Менеджеры тратили часы на нецелевые лиды.",
		Solution:  "Бот-квалификатор собирает вводные и передаёт менеджеру только готовые заявки.",
		Effect:    "Время менеджера на лид сократилось втрое.",
	},
	{
		Direction: "Медицина",
		Title:     "Запись и напоминания",
		Text:      "Администраторы не справлялись с потоком звонков на запись.",
		Solution:  "Автоматическая запись и напоминания в мессенджерах.",
		Effect:    "Доля неявок снизилась на четверть.",
	},
}

var faqsFallback = []types.Faq{
	{
		Question: "Для чего нам это вообще нужно?",
		Answer:   "Чтобы сотрудники занимались работой, которая приносит деньги, а рутину делали машины. Обычно первые результаты видны в течение месяца.",
	},
	{
		Question: "Это безопасно? Что с персональными данными?",
		Answer:   "Данные обрабатываются в соответствии с 152-ФЗ, при необходимости разворачиваем решение в вашем контуре.",
	},
	{
		Question: "Внедрение ИИ — это сложно?",
		Answer:   "С нашей стороны — нет. Начинаем с пилота на одном процессе, ваша команда тратит на запуск несколько часов.",
	},
	{
		Question: "Нужно ли менять CRM или внутренние системы?",
		Answer:   "Нет, мы подключаемся к тому, что у вас уже есть.",
	},
	{
		Question: "Что, если сотрудники будут сопротивляться?",
		Answer:   "Мы обучаем команду и показываем, что ассистент снимает с них рутину, а не заменяет их.",
	},
	{
		Question: "Сколько это стоит?",
		Answer:   "Зависит от объёма процессов. После диагностики даём фиксированную смету пилота.",
	},
}
