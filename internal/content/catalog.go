package content

// The catalog below mirrors the published MathPech curriculum: two
// chapters per collège level, lycée chapters for analysis and geometry.

var lessons = []Lesson{
	// 6ème (Cycle 3)
	{
		ID:       "l_6_1",
		Title:    "Les Fractions simples",
		Level:    Sixieme,
		Category: Algebre,
		Summary:  "Comprendre la notion de partage et d'écriture fractionnaire.",
		Content: "Une fraction représente le partage d'une unité en parts égales.\n\n" +
			"**Exemple :** $\\frac{3}{4}$ signifie que l'on a pris 3 parts d'une unité coupée en 4.\n" +
			"- Le chiffre du haut est le **numérateur**.\n" +
			"- Le chiffre du bas est le **dénominateur**.",
	},
	{
		ID:       "l_6_2",
		Title:    "Angles et Mesures",
		Level:    Sixieme,
		Category: Geometrie,
		Summary:  "Apprendre à nommer et mesurer les angles avec un rapporteur.",
		Content: "Un angle est une portion de plan délimitée par deux demi-droites de même origine.\n" +
			"- Un angle **aigu** mesure moins de $90^\\circ$.\n" +
			"- Un angle **droit** mesure exactement $90^\\circ$.\n" +
			"- Un angle **obtus** mesure entre $90^\\circ$ et $180^\\circ$.",
	},

	// 5ème (Cycle 4)
	{
		ID:       "l_5_1",
		Title:    "Priorités Opératoires",
		Level:    Cinquieme,
		Category: Algebre,
		Summary:  "Apprendre l'ordre des calculs dans une expression complexe.",
		Content: "Dans une expression sans parenthèses, on effectue :\n" +
			"1. Les **multiplications** et les **divisions**.\n" +
			"2. Les **additions** et les **soustractions** de gauche à droite.\n\n" +
			"S'il y a des parenthèses, on commence par les calculs les plus intérieurs.",
	},
	{
		ID:       "l_5_2",
		Title:    "Nombres Relatifs",
		Level:    Cinquieme,
		Category: Algebre,
		Summary:  "Introduction aux nombres négatifs et leur position sur une droite graduée.",
		Content: "Un nombre relatif est composé d'un signe (+ ou -) et d'une distance à zéro.\n" +
			"- Pour additionner deux nombres de même signe, on garde le signe et on additionne les distances.\n" +
			"- Pour deux nombres de signes contraires, on prend le signe de celui qui a la plus grande distance et on soustrait les distances.",
	},

	// 4ème (Cycle 4)
	{
		ID:       "l_4_1",
		Title:    "Théorème de Pythagore",
		Level:    Quatrieme,
		Category: Geometrie,
		Summary:  "Calculer la longueur d'un côté dans un triangle rectangle.",
		Content: "Dans un triangle rectangle, le carré de l'hypoténuse est égal à la somme des carrés des deux autres côtés.\n\n" +
			"Si $ABC$ est rectangle en $A$, alors :\n" +
			"$$BC^2 = AB^2 + AC^2$$",
	},
	{
		ID:       "l_4_2",
		Title:    "Puissances de 10",
		Level:    Quatrieme,
		Category: Algebre,
		Summary:  "Utiliser les exposants pour écrire de très grands ou très petits nombres.",
		Content: "L'expression $10^n$ représente un 1 suivi de $n$ zéros.\n" +
			"- $10^3 = 1000$\n" +
			"- $10^{-2} = 0,01$\n" +
			"- Notation scientifique : $a \\times 10^n$ où $1 \\leq a < 10$.",
	},

	// 3ème (Cycle 4)
	{
		ID:       "l1",
		Title:    "Identités Remarquables",
		Level:    Troisieme,
		Category: Algebre,
		Summary:  "Maîtriser les développements rapides avec les formules clés.",
		Content: "Les trois identités remarquables à connaître par cœur :\n\n" +
			"1. $(a + b)^2 = a^2 + 2ab + b^2$\n" +
			"2. $(a - b)^2 = a^2 - 2ab + b^2$\n" +
			"3. $(a - b)(a + b) = a^2 - b^2$",
	},
	{
		ID:       "l_3_2",
		Title:    "Théorème de Thalès",
		Level:    Troisieme,
		Category: Geometrie,
		Summary:  "Calculer des longueurs dans des triangles emboîtés.",
		Content: "Si deux droites $(BM)$ et $(CN)$ sont sécantes en $A$, et si $(MN) // (BC)$, alors :\n\n" +
			"$$\\frac{AM}{AB} = \\frac{AN}{AC} = \\frac{MN}{BC}$$",
	},

	// Seconde (Lycée)
	{
		ID:       "l2",
		Title:    "Fonction Carrée",
		Level:    Seconde,
		Category: Analyse,
		Summary:  "Étude de la fonction $f(x) = x^2$ et sa représentation graphique.",
		Content: "La fonction carrée est définie sur $\\mathbb{R}$ par $f(x) = x^2$.\n" +
			"- Sa courbe est une **parabole**.\n" +
			"- Elle est décroissante sur $]-\\infty; 0]$ et croissante sur $[0; +\\infty[$.",
	},
	{
		ID:       "l_2_2",
		Title:    "Vecteurs du Plan",
		Level:    Seconde,
		Category: Geometrie,
		Summary:  "Translation et coordonnées de vecteurs.",
		Content: "Un vecteur $\\vec{u}$ est défini par une direction, un sens et une norme.\n" +
			"- Relation de Chasles : $\\vec{AB} + \\vec{BC} = \\vec{AC}$\n" +
			"- Coordonnées : $\\vec{AB}(x_B - x_A ; y_B - y_A)$",
	},

	// Première (Lycée)
	{
		ID:       "l_1_1",
		Title:    "La Dérivation",
		Level:    Premiere,
		Category: Analyse,
		Summary:  "Calculer le coefficient directeur de la tangente en un point.",
		Content: "Le nombre dérivé $f'(a)$ est la limite du taux d'accroissement quand $h$ tend vers 0.\n\n" +
			"Formules usuelles :\n" +
			"- Si $f(x) = x^n$, alors $f'(x) = nx^{n-1}$.\n" +
			"- Si $f(x) = \\frac{1}{x}$, alors $f'(x) = -\\frac{1}{x^2}$.",
	},
	{
		ID:       "l_1_2",
		Title:    "Suites Numériques",
		Level:    Premiere,
		Category: Analyse,
		Summary:  "Suites arithmétiques et géométriques.",
		Content: "Une suite $(u_n)$ est une fonction de $\\mathbb{N}$ vers $\\mathbb{R}$.\n" +
			"- Arithmétique : $u_{n+1} = u_n + r$\n" +
			"- Géométrique : $u_{n+1} = u_n \\times q$",
	},

	// Terminale (Lycée)
	{
		ID:       "l3",
		Title:    "Nombres Complexes",
		Level:    Terminale,
		Category: Analyse,
		Summary:  "Introduction à l'ensemble $\\mathbb{C}$ et au nombre $i$.",
		Content: "Dans $\\mathbb{C}$, il existe $i$ tel que $i^2 = -1$.\n" +
			"Tout complexe s'écrit sous forme algébrique $z = a + ib$.",
	},
	{
		ID:       "l_t_2",
		Title:    "Calcul Intégral",
		Level:    Terminale,
		Category: Analyse,
		Summary:  "Calcul d'aires sous la courbe et primitives.",
		Content: "L'intégrale d'une fonction $f$ entre $a$ et $b$ est notée $\\int_{a}^{b} f(x) dx$.\n" +
			"Elle correspond à l'aire sous la courbe si $f(x) \\geq 0$.",
	},
}

var exercises = map[string][]Exercise{
	"l_6_1": {
		{
			ID:          "e_6_1",
			LessonID:    "l_6_1",
			Difficulty:  Bronze,
			Question:    "Si je mange $\\frac{1}{4}$ d'un gâteau, combien de parts reste-t-il sur 4 ?",
			Hints:       []string{"Le total est $\\frac{4}{4}$", "Fais la soustraction $4 - 1$"},
			Solution:    "3",
			Explanation: "Le gâteau entier représente $\\frac{4}{4}$. Si on enlève $\\frac{1}{4}$, il reste $4 - 1 = 3$ parts.",
		},
		{
			ID:          "e_6_2",
			LessonID:    "l_6_1",
			Difficulty:  Argent,
			Question:    "Quelle est la fraction simplifiée de $\\frac{10}{20}$ ?",
			Hints:       []string{"Divise le haut et le bas par 10"},
			Solution:    "1/2",
			Explanation: "Pour simplifier $\\frac{10}{20}$, on divise le numérateur et le dénominateur par leur plus grand diviseur commun, ici 10. $10 \\div 10 = 1$ et $20 \\div 10 = 2$.",
		},
	},
	"l_5_1": {
		{
			ID:          "e_5_1",
			LessonID:    "l_5_1",
			Difficulty:  Bronze,
			Question:    "Calculer : $5 + 3 \\times 2$",
			Hints:       []string{"La multiplication est prioritaire"},
			Solution:    "11",
			Explanation: "On effectue d'abord la multiplication : $3 \\times 2 = 6$. Puis l'addition : $5 + 6 = 11$. L'erreur classique est de faire $5 + 3$ d'abord.",
		},
		{
			ID:          "e_5_2",
			LessonID:    "l_5_1",
			Difficulty:  Argent,
			Question:    "Calculer : $(10 - 2) \\times 3$",
			Hints:       []string{"Les parenthèses sont prioritaires"},
			Solution:    "24",
			Explanation: "On calcule d'abord ce qui est entre parenthèses : $10 - 2 = 8$. Puis on multiplie : $8 \\times 3 = 24$.",
		},
	},
	"l_4_1": {
		{
			ID:          "e_4_1",
			LessonID:    "l_4_1",
			Difficulty:  Bronze,
			Question:    "Dans un triangle rectangle, si les côtés de l'angle droit valent 3 et 4, combien vaut l'hypoténuse ?",
			Hints:       []string{"Calcule $3^2 + 4^2$", "Cherche la racine carrée du résultat"},
			Solution:    "5",
			Explanation: "On applique Pythagore : $3^2 + 4^2 = 9 + 16 = 25$. La racine carrée de 25 est 5.",
		},
	},
	"l1": {
		{
			ID:          "e1",
			LessonID:    "l1",
			Difficulty:  Bronze,
			Question:    "Développer l'expression : $(x + 4)^2$",
			Hints:       []string{"Utilise $(a+b)^2 = a^2 + 2ab + b^2$"},
			Solution:    "x^2 + 8x + 16",
			Explanation: "On utilise l'identité remarquable $(a+b)^2 = a^2 + 2ab + b^2$ avec $a=x$ et $b=4$. On obtient $x^2 + 2 \\times x \\times 4 + 4^2$, ce qui donne $x^2 + 8x + 16$.",
		},
		{
			ID:          "e1_2",
			LessonID:    "l1",
			Difficulty:  Argent,
			Question:    "Développer $(2x - 3)^2$",
			Hints:       []string{"Utilise $(a-b)^2 = a^2 - 2ab + b^2$"},
			Solution:    "4x^2 - 12x + 9",
			Explanation: "Avec $a=2x$ et $b=3$, on a $(2x)^2 - 2(2x)(3) + 3^2$, donc $4x^2 - 12x + 9$.",
		},
		{
			ID:          "e1_3",
			LessonID:    "l1",
			Difficulty:  Or,
			Question:    "Calculer $99^2$ en utilisant les identités remarquables.",
			Hints:       []string{"99 = 100 - 1", "Utilise $(a-b)^2$"},
			Solution:    "9801",
			Explanation: "$99^2 = (100 - 1)^2 = 100^2 - 2 \\times 100 \\times 1 + 1^2 = 10000 - 200 + 1 = 9801$.",
		},
	},
	"l_1_1": {
		{
			ID:          "e_1_1",
			LessonID:    "l_1_1",
			Difficulty:  Bronze,
			Question:    "Quelle est la dérivée de $f(x) = x^2$ ?",
			Hints:       []string{"Applique la formule $nx^{n-1}$ avec $n=2$"},
			Solution:    "2x",
			Explanation: "La dérivée de $x^n$ est $nx^{n-1}$. Pour $n=2$, on a $2x^{2-1} = 2x$.",
		},
		{
			ID:          "e_1_2",
			LessonID:    "l_1_1",
			Difficulty:  Argent,
			Question:    "Dériver $g(x) = 5x^3$",
			Hints:       []string{"Le coefficient 5 reste devant"},
			Solution:    "15x^2",
			Explanation: "On dérive $x^3$ en $3x^2$ et on multiplie par le coefficient 5 : $5 \\times 3x^2 = 15x^2$.",
		},
	},
	"l3": {
		{
			ID:          "e3",
			LessonID:    "l3",
			Difficulty:  Argent,
			Question:    "Calculer $(2i)^2$",
			Hints:       []string{"Rappelle-toi que $i^2 = -1$", "$(2i)^2 = 2^2 \\times i^2$"},
			Solution:    "-4",
			Explanation: "On élève chaque facteur au carré : $(2i)^2 = 2^2 \\times i^2$. On sait que $2^2 = 4$ et $i^2 = -1$, donc $4 \\times (-1) = -4$. L'erreur classique est d'oublier le signe moins.",
		},
		{
			ID:          "e3_2",
			LessonID:    "l3",
			Difficulty:  Or,
			Question:    "Donner la forme algébrique de $(1+i)^2$",
			Hints:       []string{"Développe comme une identité remarquable classique"},
			Solution:    "2i",
			Explanation: "$(1+i)^2 = 1^2 + 2i + i^2 = 1 + 2i - 1 = 2i$.",
		},
	},
}
