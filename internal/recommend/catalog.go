package recommend

import "github.com/Vexa12/climexa/internal/domain"

// catalog maps activity keys to their fixed recommendation tables.
var catalog = map[string][]domain.Recommendation{
	"senderismo": {
		{Location: "Cerro Tunari", Dates: "15-20 Mayo", Score: 9.2, Temperature: 12, Conditions: "Despejado", Rainfall: 5,
			Reason: "Excelente visibilidad y senderos bien marcados. Ideal para principiantes y avanzados."},
		{Location: "Valle de la Luna", Dates: "10-15 Junio", Score: 8.8, Temperature: 15, Conditions: "Parcialmente nublado", Rainfall: 10,
			Reason: "Formaciones rocosas únicas y rutas moderadas. Perfecto para fotografía."},
		{Location: "Pico Austria", Dates: "1-5 Julio", Score: 9.5, Temperature: 8, Conditions: "Despejado", Rainfall: 3,
			Reason: "Vista panorámica excepcional. Desafío moderado con recompensa increíble."},
	},
	"camping": {
		{Location: "Lago Angostura", Dates: "20-25 Mayo", Score: 9.0, Temperature: 14, Conditions: "Despejado", Rainfall: 8,
			Reason: "Área de camping organizada con vista al lago. Ideal para familias."},
		{Location: "Parque Nacional Tunari", Dates: "15-20 Junio", Score: 8.5, Temperature: 11, Conditions: "Nublado", Rainfall: 15,
			Reason: "Zonas de camping primitivas rodeadas de naturaleza. Experiencia auténtica."},
		{Location: "Río Taquina", Dates: "10-15 Julio", Score: 9.3, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 12,
			Reason: "Camping junto al río con actividades acuáticas. Ambiente relajante."},
	},
	"fotografia": {
		{Location: "Valle de la Luna", Dates: "12-18 Junio", Score: 9.4, Temperature: 15, Conditions: "Despejado", Rainfall: 6,
			Reason: "Formaciones rocosas surrealistas perfectas para fotos artísticas al atardecer."},
		{Location: "Cerro Manquipata", Dates: "8-14 Julio", Score: 8.9, Temperature: 13, Conditions: "Parcialmente nublado", Rainfall: 9,
			Reason: "Vista panorámica de la ciudad. Ideal para fotografía urbana y paisajística."},
		{Location: "Lago Corani", Dates: "20-26 Julio", Score: 9.1, Temperature: 10, Conditions: "Despejado", Rainfall: 4,
			Reason: "Reflejos perfectos en el agua. Condiciones ideales para fotografía de naturaleza."},
	},
	"observacion": {
		{Location: "Cerro Tunari", Dates: "15-20 Julio", Score: 9.6, Temperature: 6, Conditions: "Despejado", Rainfall: 2,
			Reason: "Altitud perfecta para observación astronómica. Cielo nocturno excepcional."},
		{Location: "Pampa Aullagas", Dates: "10-15 Agosto", Score: 9.2, Temperature: 8, Conditions: "Despejado", Rainfall: 3,
			Reason: "Zona de baja contaminación lumínica. Ideal para telescopios avanzados."},
		{Location: "Cerro Manquipata", Dates: "5-10 Agosto", Score: 8.8, Temperature: 9, Conditions: "Parcialmente nublado", Rainfall: 7,
			Reason: "Acceso fácil con vista despejada. Bueno para principiantes en astronomía."},
	},
	"escalada": {
		{Location: "Cerro Tunari - Pared Norte", Dates: "1-5 Junio", Score: 9.3, Temperature: 10, Conditions: "Despejado", Rainfall: 4,
			Reason: "Rutas técnicas desafiantes. Condiciones de hielo ideales en temporada."},
		{Location: "Río Taquina - Rocas", Dates: "15-20 Julio", Score: 8.7, Temperature: 14, Conditions: "Parcialmente nublado", Rainfall: 11,
			Reason: "Escalada deportiva con rutas variadas. Ambiente natural impresionante."},
		{Location: "Valle de la Luna - Formaciones", Dates: "10-15 Agosto", Score: 9.0, Temperature: 12, Conditions: "Despejado", Rainfall: 6,
			Reason: "Escalada boulder única. Formaciones rocosas perfectas para técnica."},
	},
	"ciclismo": {
		{Location: "Camino a Sacaba", Dates: "20-25 Mayo", Score: 8.9, Temperature: 18, Conditions: "Despejado", Rainfall: 8,
			Reason: "Rutas planas con vistas panorámicas. Ideal para ciclismo recreativo."},
		{Location: "Cerro Manquipata - Circuito", Dates: "15-20 Junio", Score: 9.1, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 10,
			Reason: "Desafío moderado con descensos técnicos. Paisajes cambiantes."},
		{Location: "Valle Bajo", Dates: "10-15 Julio", Score: 8.5, Temperature: 19, Conditions: "Despejado", Rainfall: 7,
			Reason: "Rutas familiares con paradas pintorescas. Perfecto para grupos."},
	},
	"pesca": {
		{Location: "Lago Angostura", Dates: "15-20 Abril", Score: 8.8, Temperature: 17, Conditions: "Parcialmente nublado", Rainfall: 12,
			Reason: "Pesca de trucha excelente. Ambiente tranquilo y bien equipado."},
		{Location: "Río Rocha", Dates: "10-15 Mayo", Score: 9.0, Temperature: 16, Conditions: "Nublado", Rainfall: 15,
			Reason: "Pesca de pejerrey. Corrientes moderadas perfectas para técnica."},
		{Location: "Embalse de La Angostura", Dates: "5-10 Junio", Score: 8.6, Temperature: 15, Conditions: "Parcialmente nublado", Rainfall: 13,
			Reason: "Diversidad de especies. Zonas designadas para pesca deportiva."},
	},
	"picnic": {
		{Location: "Parque Nacional Tunari - Área de Picnic", Dates: "20-25 Mayo", Score: 8.7, Temperature: 18, Conditions: "Despejado", Rainfall: 9,
			Reason: "Áreas designadas con mesas y parrillas. Ambiente familiar perfecto."},
		{Location: "Lago Corani - Orillas", Dates: "15-20 Junio", Score: 9.2, Temperature: 17, Conditions: "Parcialmente nublado", Rainfall: 8,
			Reason: "Vista al lago con brisa fresca. Ideal para relajación y comida."},
		{Location: "Valle de la Luna - Zona de Descanso", Dates: "10-15 Julio", Score: 8.9, Temperature: 16, Conditions: "Despejado", Rainfall: 6,
			Reason: "Entorno único con mesas de picnic. Experiencia memorable."},
	},
	"kayak": {
		{Location: "Río Taquina - Tramo Superior", Dates: "15-20 Mayo", Score: 9.1, Temperature: 19, Conditions: "Despejado", Rainfall: 7,
			Reason: "Rápidos moderados perfectos para kayak. Agua cristalina."},
		{Location: "Lago Angostura - Circuito", Dates: "10-15 Junio", Score: 8.8, Temperature: 18, Conditions: "Parcialmente nublado", Rainfall: 10,
			Reason: "Agua calma ideal para principiantes. Vistas panorámicas."},
		{Location: "Río Rocha - Sección Media", Dates: "5-10 Julio", Score: 9.3, Temperature: 17, Conditions: "Despejado", Rainfall: 8,
			Reason: "Desafío intermedio con rápidos emocionantes. Naturaleza exuberante."},
	},
	"birdwatching": {
		{Location: "Parque Nacional Tunari", Dates: "20-25 Abril", Score: 9.0, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 11,
			Reason: "Diversidad de aves migratorias. Senderos accesibles con guías."},
		{Location: "Valle Bajo - Humedales", Dates: "15-20 Mayo", Score: 8.7, Temperature: 18, Conditions: "Nublado", Rainfall: 14,
			Reason: "Observación de aves acuáticas. Ambiente tranquilo y biodiverso."},
		{Location: "Cerro Manquipata - Laderas", Dates: "10-15 Junio", Score: 9.2, Temperature: 15, Conditions: "Despejado", Rainfall: 6,
			Reason: "Aves de altura con telescopios. Vistas excepcionales."},
	},
	"yoga": {
		{Location: "Parque Nacional Tunari - Claro", Dates: "15-20 Mayo", Score: 8.9, Temperature: 17, Conditions: "Despejado", Rainfall: 8,
			Reason: "Espacios abiertos con energía positiva. Ideal para práctica matutina."},
		{Location: "Lago Corani - Orillas", Dates: "10-15 Junio", Score: 9.1, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 9,
			Reason: "Vista al agua calmante. Ambiente sereno para meditación."},
		{Location: "Valle de la Luna - Plataforma", Dates: "5-10 Julio", Score: 8.8, Temperature: 15, Conditions: "Despejado", Rainfall: 7,
			Reason: "Entorno único que inspira paz. Perfecto para yoga al aire libre."},
	},
	"meditacion": {
		{Location: "Cerro Tunari - Mirador", Dates: "20-25 Mayo", Score: 9.3, Temperature: 14, Conditions: "Despejado", Rainfall: 5,
			Reason: "Altitud espiritual con vista panorámica. Ambiente de paz absoluta."},
		{Location: "Río Taquina - Cascada", Dates: "15-20 Junio", Score: 8.9, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 10,
			Reason: "Sonido del agua natural. Perfecto para meditación mindfulness."},
		{Location: "Parque Nacional Tunari - Bosque", Dates: "10-15 Julio", Score: 9.0, Temperature: 15, Conditions: "Nublado", Rainfall: 12,
			Reason: "Entorno natural con sonidos de la naturaleza. Conexión profunda."},
	},
	"paseo_bosque": {
		{Location: "Parque Nacional Tunari - Senderos", Dates: "15-20 Abril", Score: 8.8, Temperature: 18, Conditions: "Parcialmente nublado", Rainfall: 11,
			Reason: "Bosques densos con variedad de flora. Caminatas relajantes."},
		{Location: "Valle Bajo - Arboleda", Dates: "10-15 Mayo", Score: 9.0, Temperature: 19, Conditions: "Despejado", Rainfall: 8,
			Reason: "Árboles centenarios con sombra perfecta. Ambiente fresco."},
		{Location: "Cerro Manquipata - Laderas Boscosas", Dates: "5-10 Junio", Score: 8.6, Temperature: 17, Conditions: "Nublado", Rainfall: 13,
			Reason: "Bosque mixto con senderos suaves. Ideal para observación de naturaleza."},
	},
	"banos_bosque": {
		{Location: "Parque Nacional Tunari - Área de Shinrin-yoku", Dates: "20-25 Mayo", Score: 9.2, Temperature: 16, Conditions: "Parcialmente nublado", Rainfall: 9,
			Reason: "Técnica japonesa de baño forestal. Ambiente terapéutico comprobado."},
		{Location: "Valle de la Luna - Zona de Meditación", Dates: "15-20 Junio", Score: 8.9, Temperature: 15, Conditions: "Despejado", Rainfall: 7,
			Reason: "Entorno único con energía especial. Beneficios para la salud mental."},
		{Location: "Río Taquina - Orillas Boscosas", Dates: "10-15 Julio", Score: 9.1, Temperature: 17, Conditions: "Nublado", Rainfall: 11,
			Reason: "Combinación de agua y bosque. Experiencia multisensorial."},
	},
	"paseo_agua": {
		{Location: "Lago Angostura - Sendero Perimetral", Dates: "15-20 Abril", Score: 8.7, Temperature: 18, Conditions: "Despejado", Rainfall: 10,
			Reason: "Caminata junto al agua con vistas constantes. Ambiente relajante."},
		{Location: "Río Rocha - Margen", Dates: "10-15 Mayo", Score: 9.0, Temperature: 19, Conditions: "Parcialmente nublado", Rainfall: 9,
			Reason: "Corriente suave con sonido calmante. Perfecto para reflexión."},
		{Location: "Embalse de La Angostura - Circuito", Dates: "5-10 Junio", Score: 8.8, Temperature: 17, Conditions: "Nublado", Rainfall: 12,
			Reason: "Agua extensa con variedad de paisajes. Caminatas variadas."},
	},
}
