package sentiment

// entry scores one word. Polarity is in [-1, 1], subjectivity in [0, 1].
type entry struct {
	Polarity     float64
	Subjectivity float64
}

// lexicon is a compact English adjective/verb lexicon. Values follow the
// averaged per-sense scores of common opinion-mining lexicons.
var lexicon = map[string]entry{
	// positive
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"wonderful":   {1.0, 1.0},
	"fantastic":   {0.4, 0.9},
	"brilliant":   {0.9, 1.0},
	"perfect":     {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"nice":        {0.6, 1.0},
	"beautiful":   {0.85, 1.0},
	"lovely":      {0.5, 0.75},
	"pretty":      {0.25, 1.0},
	"happy":       {0.8, 1.0},
	"glad":        {0.5, 1.0},
	"pleased":     {0.5, 1.0},
	"delighted":   {0.7, 0.9},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"like":        {0.2, 0.3},
	"liked":       {0.6, 0.8},
	"enjoy":       {0.4, 0.5},
	"enjoyed":     {0.5, 0.6},
	"fun":         {0.3, 0.2},
	"funny":       {0.25, 0.75},
	"interesting": {0.5, 0.5},
	"exciting":    {0.3, 0.8},
	"impressive":  {1.0, 1.0},
	"incredible":  {0.9, 0.9},
	"superb":      {1.0, 1.0},
	"outstanding": {0.5, 0.5},
	"fine":        {0.42, 0.5},
	"cool":        {0.35, 0.65},
	"easy":        {0.43, 0.83},
	"simple":      {0.0, 0.36},
	"clean":       {0.37, 0.69},
	"fast":        {0.2, 0.6},
	"quick":       {0.33, 0.5},
	"smooth":      {0.4, 0.7},
	"helpful":     {0.5, 0.5},
	"useful":      {0.3, 0.0},
	"valuable":    {0.5, 0.6},
	"reliable":    {0.4, 0.6},
	"friendly":    {0.38, 0.5},
	"kind":        {0.6, 0.9},
	"polite":      {0.4, 0.6},
	"smart":       {0.21, 0.64},
	"clever":      {0.5, 0.8},
	"elegant":     {0.5, 0.7},
	"fresh":       {0.3, 0.5},
	"successful":  {0.75, 0.95},
	"satisfied":   {0.5, 1.0},
	"comfortable": {0.4, 0.7},
	"positive":    {0.23, 0.55},
	"calm":        {0.3, 0.75},
	"safe":        {0.5, 0.5},
	"strong":      {0.43, 0.73},
	"powerful":    {0.3, 1.0},
	"right":       {0.29, 0.54},
	"free":        {0.4, 0.8},
	"rich":        {0.38, 0.69},
	"bright":      {0.7, 0.9},
	"warm":        {0.6, 0.6},
	"sweet":       {0.35, 0.65},
	"recommended": {0.5, 0.5},
	"recommend":   {0.3, 0.4},
	"thanks":      {0.2, 0.2},
	"thank":       {0.2, 0.2},
	"win":         {0.8, 0.4},
	"winning":     {0.5, 0.75},
	"gorgeous":    {0.7, 0.9},
	"charming":    {0.7, 0.8},
	"joyful":      {0.8, 0.9},
	"cheerful":    {0.6, 0.8},
	"proud":       {0.8, 1.0},
	"favorite":    {0.5, 1.0},
	"favourite":   {0.5, 1.0},
	"magnificent": {1.0, 1.0},
	"remarkable":  {0.75, 0.75},
	"solid":       {0.2, 0.5},
	"efficient":   {0.4, 0.6},
	"intuitive":   {0.5, 0.8},
	"worth":       {0.3, 0.1},
	"worthwhile":  {0.5, 0.5},

	// negative
	"bad":           {-0.7, 0.67},
	"worse":         {-0.4, 0.6},
	"worst":         {-1.0, 1.0},
	"terrible":      {-1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"horrible":      {-1.0, 1.0},
	"dreadful":      {-1.0, 1.0},
	"poor":          {-0.4, 0.6},
	"sad":           {-0.5, 1.0},
	"unhappy":       {-0.6, 0.9},
	"angry":         {-0.5, 1.0},
	"annoying":      {-0.8, 0.9},
	"annoyed":       {-0.4, 0.7},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.9, 0.9},
	"dislike":       {-0.5, 0.7},
	"boring":        {-1.0, 1.0},
	"dull":          {-0.31, 0.65},
	"ugly":          {-0.7, 1.0},
	"stupid":        {-0.8, 1.0},
	"dumb":          {-0.38, 0.5},
	"useless":       {-0.5, 0.2},
	"broken":        {-0.4, 0.4},
	"slow":          {-0.3, 0.39},
	"difficult":     {-0.5, 1.0},
	"hard":          {-0.29, 0.54},
	"confusing":     {-0.3, 0.7},
	"confused":      {-0.4, 0.7},
	"wrong":         {-0.5, 0.9},
	"fail":          {-0.5, 0.3},
	"failed":        {-0.5, 0.3},
	"failure":       {-0.3, 0.3},
	"problem":       {-0.2, 0.3},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"frustrating":   {-0.4, 0.4},
	"frustrated":    {-0.7, 0.7},
	"painful":       {-0.7, 0.9},
	"pathetic":      {-1.0, 1.0},
	"nasty":         {-1.0, 1.0},
	"mean":          {-0.31, 0.69},
	"rude":          {-0.3, 0.7},
	"cruel":         {-1.0, 1.0},
	"dirty":         {-0.6, 0.8},
	"cheap":         {0.4, 0.7},
	"expensive":     {-0.5, 0.7},
	"weak":          {-0.38, 0.62},
	"scary":         {-0.5, 1.0},
	"afraid":        {-0.6, 0.9},
	"worried":       {-0.5, 0.8},
	"tired":         {-0.4, 0.7},
	"sick":          {-0.71, 0.86},
	"lazy":          {-0.25, 0.6},
	"ridiculous":    {-0.33, 1.0},
	"silly":         {-0.5, 0.9},
	"negative":      {-0.3, 0.4},
	"unfortunate":   {-0.5, 0.75},
	"unfortunately": {-0.5, 1.0},
	"sorry":         {-0.5, 1.0},
	"miserable":     {-1.0, 1.0},
	"disgusting":    {-1.0, 1.0},
	"mediocre":      {-0.5, 0.8},
	"buggy":         {-0.6, 0.7},
	"messy":         {-0.5, 0.8},
	"clunky":        {-0.5, 0.8},
	"unusable":      {-0.8, 0.8},
	"waste":         {-0.2, 0.1},
	"sucks":         {-0.3, 0.3},
	"crap":          {-0.8, 0.8},
}

// intensifiers scale the polarity and subjectivity of the word they precede
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.5,
	"totally":    1.4,
	"completely": 1.4,
	"highly":     1.3,
	"truly":      1.3,
	"super":      1.4,
	"too":        1.2,
	"quite":      1.1,
	"most":       1.2,
	"more":       1.1,
	"fairly":     0.9,
	"rather":     0.9,
	"somewhat":   0.8,
	"slightly":   0.5,
	"barely":     0.5,
	"less":       0.7,
	"little":     0.7,
}

// negations flip and dampen the next scored word
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"n't":     true,
	"neither": true,
	"nor":     true,
	"without": true,
}

// negationFactor is applied to the polarity of a negated word
const negationFactor = -0.5
