package fallback

import (
	"time"

	"gorm.io/datatypes"

	"github.com/neuroscale/neuroscale-site/internal/types"
)

// Document returns the built-in legal page for a slug, or nil for a slug the
// site does not know. Served whenever the content service has no record.
func Document(slug string) *types.Document {
	switch slug {
	case "privacy":
		return &types.Document{
			Slug:        "privacy",
			Title:       "Политика конфиденциальности",
			Description: "Настоящая политика описывает, как NeuroScale собирает, использует и защищает персональные данные посетителей сайта и клиентов.",
			Content:     datatypes.JSON(privacyContent),
			UpdatedAt:   fallbackUpdatedAt,
		}
	case "consent":
		return &types.Document{
			Slug:        "consent",
			Title:       "Согласие на обработку данных",
			Description: "Условия, на которых посетители сайта предоставляют NeuroScale согласие на обработку персональных данных.",
			Content:     datatypes.JSON(consentContent),
			UpdatedAt:   fallbackUpdatedAt,
		}
	}
	return nil
}

var fallbackUpdatedAt = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

const privacyContent = `{"document":[
{"type":"heading","level":2,"children":[{"text":"1. Общие положения"}]},
{"type":"paragraph","children":[{"text":"Политика разработана в соответствии с Федеральным законом Российской Федерации № 152-ФЗ «О персональных данных» и иными нормативными актами. Используя наш сайт, вы подтверждаете согласие с условиями обработки персональных данных, описанными в настоящем документе."}]},
{"type":"heading","level":2,"children":[{"text":"2. Какие данные мы обрабатываем"}]},
{"type":"unordered-list","children":[
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Контактные данные: имя, номер телефона, адрес электронной почты."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Информацию, предоставляемую в заявках и формах обратной связи."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Технические сведения: IP-адрес, данные файлов cookie, параметры используемого устройства и браузера."}]}]}
]},
{"type":"heading","level":2,"children":[{"text":"3. Цели обработки данных"}]},
{"type":"unordered-list","children":[
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Связь с пользователями по запросам и заявкам."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Подготовка индивидуальных предложений и материалов."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Улучшение качества сервиса и доработка продуктов NeuroScale."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Информирование о новых возможностях, услугах и мероприятиях."}]}]}
]},
{"type":"heading","level":2,"children":[{"text":"4. Правовые основания"}]},
{"type":"paragraph","children":[{"text":"NeuroScale осуществляет обработку персональных данных на основании согласия субъектов данных, а также для исполнения договоров и законных обязанностей компании."}]},
{"type":"heading","level":2,"children":[{"text":"5. Передача и хранение"}]},
{"type":"paragraph","children":[{"text":"Данные хранятся на защищённых серверах в соответствии с требованиями безопасности. Передача третьим лицам возможна только по закону либо при привлечении партнёров, которые обязуются соблюдать конфиденциальность."}]},
{"type":"heading","level":2,"children":[{"text":"6. Права субъектов данных"}]},
{"type":"paragraph","children":[{"text":"Вы можете запросить информацию о хранении персональных данных, потребовать их уточнения, блокирования или удаления. Для этого направьте запрос на электронную почту, указанную в разделе контактов."}]},
{"type":"heading","level":2,"children":[{"text":"7. Cookies и аналитика"}]},
{"type":"paragraph","children":[{"text":"Мы используем файлы cookie и инструменты аналитики для персонализации сервисов и улучшения функциональности сайта. Вы можете ограничить использование cookie в настройках браузера, но это может повлиять на работу отдельных разделов."}]},
{"type":"heading","level":2,"children":[{"text":"8. Обновление политики"}]},
{"type":"paragraph","children":[{"text":"Мы оставляем за собой право обновлять политику конфиденциальности. Продолжение использования сайта после изменений означает ваше согласие с обновлённой редакцией."}]}
]}`

const consentContent = `{"document":[
{"type":"heading","level":2,"children":[{"text":"1. Субъект персональных данных"}]},
{"type":"paragraph","children":[{"text":"Я, заполняя формы обратной связи на сайте NeuroScale, свободно, своей волей и в своём интересе предоставляю согласие на обработку персональных данных компанией NeuroScale."}]},
{"type":"heading","level":2,"children":[{"text":"2. Перечень данных"}]},
{"type":"unordered-list","children":[
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Фамилия, имя, отчество или иные идентификационные данные."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Контактные данные: адрес электронной почты, номер телефона, мессенджеры."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Дополнительная информация, содержащаяся в сообщениях и комментариях в формах обратной связи."}]}]}
]},
{"type":"heading","level":2,"children":[{"text":"3. Цели обработки"}]},
{"type":"unordered-list","children":[
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Ответ на запросы и предоставление консультаций."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Подготовка предложений по продуктам и услугам NeuroScale."}]}]},
{"type":"list-item","children":[{"type":"paragraph","children":[{"text":"Информирование о мероприятиях, новостях и обновлениях компании."}]}]}
]},
{"type":"heading","level":2,"children":[{"text":"4. Действия с данными"}]},
{"type":"paragraph","children":[{"text":"NeuroScale вправе осуществлять сбор, систематизацию, хранение, уточнение, использование, обезличивание и удаление персональных данных, включая передачу уполномоченным партнёрам для достижения указанных целей при условии соблюдения конфиденциальности."}]},
{"type":"heading","level":2,"children":[{"text":"5. Срок действия согласия"}]},
{"type":"paragraph","children":[{"text":"Согласие действует бессрочно до момента его отзыва субъектом персональных данных. Отзыв может быть направлен в электронном виде на указанный компанией адрес электронной почты."}]},
{"type":"heading","level":2,"children":[{"text":"6. Права субъекта"}]},
{"type":"paragraph","children":[{"text":"Субъект имеет право на получение информации об обработке персональных данных, требование их уточнения, ограничения или прекращения обработки в установленном законом порядке."}]},
{"type":"heading","level":2,"children":[{"text":"7. Дополнительные условия"}]},
{"type":"paragraph","children":[{"text":"Подтверждая согласие, субъект гарантирует достоверность предоставленных данных и согласен с условиями политики конфиденциальности. Использование сайта без предоставления согласия ограничивает доступ к отдельным сервисам."}]}
]}`
